package assistant

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shopchat-labs/shopchat-backend/internal/modules/cart"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
)

// NoResultsMessage is the fixed reply for a search that matched nothing.
const NoResultsMessage = "No matching products found."

// Reply is the assistant's answer to one query. Products carries the full
// untruncated result list for rendering; a cart mutation leaves it empty.
type Reply struct {
	Message  string             `json:"message"`
	Products []*catalog.Product `json:"products"`
}

// Service orchestrates a storefront query: either an embedded cart
// command is executed, or the catalog is searched and the chat model
// summarizes the results.
type Service interface {
	Respond(ctx context.Context, userID, query string) (*Reply, error)
}

type service struct {
	catalog catalog.Service
	cart    cart.Service
	chat    ChatClient
	log     *logrus.Logger
}

func NewService(catalogService catalog.Service, cartService cart.Service, chat ChatClient, log *logrus.Logger) Service {
	return &service{catalog: catalogService, cart: cartService, chat: chat, log: log}
}

func (s *service) Respond(ctx context.Context, userID, query string) (*Reply, error) {
	if intent, ok := ExtractCartIntent(query); ok {
		reply, handled, err := s.applyCartIntent(ctx, userID, intent)
		if err != nil {
			return nil, err
		}
		if handled {
			return reply, nil
		}
		// Deliberate fallthrough: a command whose fragment matches no
		// product name degrades to a plain search on the original query.
		s.log.WithFields(logrus.Fields{
			"user_id":  userID,
			"fragment": intent.Fragment,
		}).Warn("cart command matched no product, falling back to search")
	}
	return s.search(ctx, query)
}

func (s *service) applyCartIntent(ctx context.Context, userID string, intent CartIntent) (*Reply, bool, error) {
	products, err := s.catalog.SearchProducts(ctx, intent.Fragment)
	if err != nil {
		return nil, false, err
	}
	fragment := strings.ToLower(intent.Fragment)
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.ProductName), fragment) {
			continue
		}
		msg, err := s.cart.Add(ctx, userID, p.ID, p.ProductName, intent.Quantity)
		if errors.Is(err, cart.ErrQuantityRange) {
			return &Reply{Message: err.Error(), Products: []*catalog.Product{}}, true, nil
		}
		if err != nil {
			return nil, false, err
		}
		return &Reply{Message: msg, Products: []*catalog.Product{}}, true, nil
	}
	return nil, false, nil
}

func (s *service) search(ctx context.Context, query string) (*Reply, error) {
	products, err := s.catalog.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &Reply{Message: NoResultsMessage, Products: []*catalog.Product{}}, nil
	}

	message, err := s.chat.Chat(ctx, buildPrompt(query, products))
	if err != nil {
		// Degrade to the plain summary instead of failing the query.
		s.log.WithError(err).Warn("chat model unavailable, replying with product summary only")
		message = formatProductSummary(products)
	}
	return &Reply{Message: message, Products: products}, nil
}
