package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/shopchat-labs/shopchat-backend/internal/modules/assistant"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/cart"
	"github.com/shopchat-labs/shopchat-backend/internal/modules/catalog"
	"github.com/shopchat-labs/shopchat-backend/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders the storefront pages. Every interaction re-renders the
// whole page from current store state; there is no incremental update.
type Server struct {
	assistant assistant.Service
	catalog   catalog.Service
	cart      cart.Service
	log       *logrus.Logger
	templates *template.Template
}

func NewServer(assistantService assistant.Service, catalogService catalog.Service, cartService cart.Service, log *logrus.Logger) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money": renderMoney,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse storefront templates")
	}
	return &Server{
		assistant: assistantService,
		catalog:   catalogService,
		cart:      cartService,
		log:       log,
		templates: tmpl,
	}, nil
}

func (s *Server) RegisterRoutes(r *chi.Mux) {
	r.Get("/", s.homeHandler)
	r.Post("/search", s.searchHandler)
	r.Post("/cart/add", s.addToCartHandler)
	r.Post("/cart/remove", s.removeFromCartHandler)
	r.Post("/cart/clear", s.clearCartHandler)
	r.Post("/cart/checkout", s.checkoutHandler)
}

// page carries everything the storefront template renders.
type page struct {
	Query    string
	Message  string
	Products []*catalog.Product
	Cart     []*cart.Item
	Total    float64
	Banner   string
}

func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, page{Banner: r.URL.Query().Get("m")})
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("query")
	if query == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	reply, err := s.assistant.Respond(r.Context(), session.UserID(r.Context()), query)
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "could not answer query"), http.StatusInternalServerError)
		return
	}
	s.renderPage(w, r, page{
		Query:    query,
		Message:  reply.Message,
		Products: reply.Products,
	})
}

func (s *Server) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		s.renderError(w, r, errors.New("invalid product id"), http.StatusBadRequest)
		return
	}
	p, err := s.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "could not retrieve product"), http.StatusNotFound)
		return
	}
	msg, err := s.cart.Add(r.Context(), session.UserID(r.Context()), p.ID, p.ProductName, 1)
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "failed to add to cart"), http.StatusInternalServerError)
		return
	}
	redirectWithBanner(w, r, msg)
}

func (s *Server) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		s.renderError(w, r, errors.New("invalid product id"), http.StatusBadRequest)
		return
	}
	msg, err := s.cart.Remove(r.Context(), session.UserID(r.Context()), productID)
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "failed to remove from cart"), http.StatusInternalServerError)
		return
	}
	redirectWithBanner(w, r, msg)
}

func (s *Server) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	msg, err := s.cart.Clear(r.Context(), session.UserID(r.Context()))
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "failed to clear cart"), http.StatusInternalServerError)
		return
	}
	redirectWithBanner(w, r, msg)
}

func (s *Server) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	msg, err := s.cart.Checkout(r.Context(), session.UserID(r.Context()))
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "failed to check out"), http.StatusInternalServerError)
		return
	}
	redirectWithBanner(w, r, msg)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, p page) {
	items, err := s.cart.List(r.Context(), session.UserID(r.Context()))
	if err != nil {
		s.renderError(w, r, errors.Wrap(err, "could not retrieve cart"), http.StatusInternalServerError)
		return
	}
	p.Cart = items
	p.Total = cart.Total(items)

	if err := s.templates.ExecuteTemplate(w, "home", p); err != nil {
		s.log.WithError(err).Error("failed to render storefront page")
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	s.log.WithFields(logrus.Fields{
		"path":  r.URL.Path,
		"error": err,
	}).Error("request failed")
	http.Error(w, err.Error(), code)
}

func redirectWithBanner(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?m="+url.QueryEscape(msg), http.StatusFound)
}

func renderMoney(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}
