package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/receipt"
	"storefront/internal/repository"
	"storefront/internal/service"
)

type Server struct {
	engine    *gin.Engine
	products  *service.ProductService
	customers *service.CustomerService
	carts     *service.CartService
	log       *zap.Logger
}

func NewServer(products *service.ProductService, customers *service.CustomerService, carts *service.CartService, log *zap.Logger) *Server {
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	s := &Server{engine: r, products: products, customers: customers, carts: carts, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.POST("", s.createProduct)
		products.GET(":id", s.getProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)
		products.GET("", s.listProducts)

		customers := v1.Group("/customers")
		customers.POST("", s.createCustomer)
		customers.GET(":id", s.getCustomer)

		carts := v1.Group("/carts")
		carts.POST("", s.createCart)
		carts.GET(":id", s.getCart)
		carts.POST(":id/items", s.addItem)
		carts.GET(":id/quote", s.quoteCart)
		carts.POST(":id/checkout", s.checkoutCart)
	}
}

// Product handlers
type createProductReq struct {
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int64            `json:"stock"`
	ExpiresOn   string           `json:"expires_on"`
	WeightGrams *decimal.Decimal `json:"weight_grams"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	var opts []domain.ProductOption
	if req.ExpiresOn != "" {
		exp, err := time.Parse(time.DateOnly, req.ExpiresOn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires_on, want YYYY-MM-DD"})
			return
		}
		opts = append(opts, domain.WithExpiry(exp))
	}
	if req.WeightGrams != nil {
		opts = append(opts, domain.WithWeight(*req.WeightGrams))
	}
	p, err := s.products.Create(c, *domain.NewProduct(req.Name, req.Price, req.Stock, opts...))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.products.GetByID(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateProductReq struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

func (s *Server) updateProduct(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, domain.Product{ID: c.Param("id"), Name: req.Name, Price: req.Price, Stock: req.Stock})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.products.Delete(c, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listProducts(c *gin.Context) {
	var f repository.ProductFilter
	if q := c.Query("q"); q != "" {
		f.NameSubstring = q
	}
	if v := c.Query("min_price"); v != "" {
		x, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		f.MinPrice = &x
	}
	if v := c.Query("max_price"); v != "" {
		x, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		f.MaxPrice = &x
	}
	if v := c.Query("shippable"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shippable, want true or false"})
			return
		}
		f.Shippable = &b
	}
	list, err := s.products.List(c, f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Customer handlers
type createCustomerReq struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func (s *Server) createCustomer(c *gin.Context) {
	var req createCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cust, err := s.customers.Create(c, req.Name, req.Balance)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (s *Server) getCustomer(c *gin.Context) {
	cust, err := s.customers.GetByID(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

// Cart handlers
func (s *Server) createCart(c *gin.Context) {
	cart, err := s.carts.Create(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.carts.Get(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (s *Server) addItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	cart, err := s.carts.AddItem(c, c.Param("id"), req.ProductID, req.Quantity)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) quoteCart(c *gin.Context) {
	totals, err := s.carts.Quote(c, c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

type checkoutReq struct {
	CustomerID string `json:"customer_id"`
}

// checkoutCart returns the result as JSON, or the printed receipt with ?format=text
func (s *Server) checkoutCart(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.carts.Checkout(c, c.Param("id"), req.CustomerID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, receipt.Text(res))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		s.log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrExpiredProduct), errors.Is(err, domain.ErrCartCheckedOut):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
