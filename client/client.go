package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"github.com/mzansi-thrift/storefront/client/internal/api"
	"github.com/mzansi-thrift/storefront/client/session"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://127.0.0.1:5000/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the storefront API. It is safe for concurrent use.
type Client struct {
	baseURL        string
	http           *http.Client
	timeout        time.Duration
	debug          bool
	authToken      string // optional bearer token, off by default
	onAuthRequired func(ctx context.Context)
	sessions       *session.Manager

	dispatcher *api.Dispatcher

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL (DefaultBaseURL when empty).
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: api.DefaultTimeout,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	if c.sessions == nil {
		c.sessions = session.NewManager(nil)
	}
	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}
	if c.authToken != "" {
		c.wrapTransportWithAuthToken()
	}

	c.dispatcher = &api.Dispatcher{
		BaseURL:        c.baseURL,
		HTTP:           c.http,
		Timeout:        c.timeout,
		OnAuthRequired: c.authRequired,
		Observe:        observe,
	}
	return c, nil
}

// wrapTransportWithAuthToken wraps the HTTP client's transport to add the
// Authorization header to all requests.
func (c *Client) wrapTransportWithAuthToken() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{
		base:  baseTransport,
		token: c.authToken,
	}
}

// bearerTransport wraps an http.RoundTripper to add a bearer token.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

func (c *Client) authRequired(ctx context.Context) {
	if c.onAuthRequired != nil {
		c.onAuthRequired(ctx)
		return
	}
	log.Warn().Msg("authentication required; sign in again")
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// Session returns the locally known session.
func (c *Client) Session() session.Session { return c.sessions.Current() }

// SessionManager returns the manager the client keeps up to date.
func (c *Client) SessionManager() *session.Manager { return c.sessions }

// Cookies returns the cookies the jar sends to the API, so a short-lived
// process can save them for the next run.
func (c *Client) Cookies() []*http.Cookie {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil
	}
	return c.http.Jar.Cookies(u)
}

// SetCookies seeds the jar with cookies saved by an earlier process.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	u, err := url.Parse(c.baseURL)
	if err != nil || len(cookies) == 0 {
		return
	}
	c.http.Jar.SetCookies(u, cookies)
}

// remember mirrors a successful sign-in into the session manager. Storage
// failures are logged; the server-side sign-in already happened.
func (c *Client) remember(ctx context.Context, s session.Session) {
	if err := c.sessions.Set(ctx, s); err != nil {
		log.Warn().Err(err).Str("role", s.Role().String()).Msg("failed to persist session")
	}
}

// --------------------------------------------------------------------
// Auth operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a buyer account and signs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (Profile, error) {
	p, err := api.Register(ctx, c.dispatcher, req)
	if err != nil {
		return Profile{}, err
	}
	c.remember(ctx, session.Buyer(p))
	return p, nil
}

// SellerRegister creates a seller account and signs it in.
func (c *Client) SellerRegister(ctx context.Context, req SellerRegisterRequest) (Profile, error) {
	p, err := api.SellerRegister(ctx, c.dispatcher, req)
	if err != nil {
		return Profile{}, err
	}
	c.remember(ctx, session.Seller(p))
	return p, nil
}

// Login signs a buyer in.
func (c *Client) Login(ctx context.Context, creds Credentials) (Profile, error) {
	p, err := api.Login(ctx, c.dispatcher, creds)
	if err != nil {
		return Profile{}, err
	}
	c.remember(ctx, session.Buyer(p))
	return p, nil
}

// SellerLogin signs a seller in.
func (c *Client) SellerLogin(ctx context.Context, creds Credentials) (Profile, error) {
	p, err := api.SellerLogin(ctx, c.dispatcher, creds)
	if err != nil {
		return Profile{}, err
	}
	c.remember(ctx, session.Seller(p))
	return p, nil
}

// Logout ends the server session. The local session is cleared even when the
// request fails; the request error is returned.
func (c *Client) Logout(ctx context.Context) error {
	err := api.Logout(ctx, c.dispatcher)
	// the caller's context may already be done; clearing must still happen
	if clearErr := c.sessions.Clear(context.WithoutCancel(ctx)); clearErr != nil {
		log.Warn().Err(clearErr).Msg("failed to clear persisted session")
	}
	return err
}

// GetCurrentUser asks the server who is signed in and updates the local
// session. A 401 clears the local session.
func (c *Client) GetCurrentUser(ctx context.Context) (session.Session, error) {
	role, p, err := api.GetCurrentUser(ctx, c.dispatcher)
	if err != nil {
		if IsKind(err, KindAuthenticationRequired) {
			c.remember(ctx, session.Anonymous())
		}
		return session.Anonymous(), err
	}
	s := session.FromUserType(role, p)
	c.remember(ctx, s)
	return s, nil
}

// --------------------------------------------------------------------
// Product operations
// --------------------------------------------------------------------

// GetProducts lists products. Pass ProductFilters{...}.Filters() or build
// Filters by hand for keys the typed struct does not cover.
func (c *Client) GetProducts(ctx context.Context, filters Filters) (json.RawMessage, error) {
	return api.GetProducts(ctx, c.dispatcher, filters)
}

// GetProduct fetches one product.
func (c *Client) GetProduct(ctx context.Context, productID int64) (json.RawMessage, error) {
	return api.GetProduct(ctx, c.dispatcher, productID)
}

// CreateProduct lists a new product for the signed-in seller.
func (c *Client) CreateProduct(ctx context.Context, product any) (json.RawMessage, error) {
	return api.CreateProduct(ctx, c.dispatcher, product)
}

// UpdateProduct updates a seller's product.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, product any) (json.RawMessage, error) {
	return api.UpdateProduct(ctx, c.dispatcher, productID, product)
}

// DeleteProduct removes a seller's product.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) (json.RawMessage, error) {
	return api.DeleteProduct(ctx, c.dispatcher, productID)
}

// CreateProductWithMedia creates a product with its photos in one upload.
func (c *Client) CreateProductWithMedia(ctx context.Context, fields []FormField, files []MediaFile) (json.RawMessage, error) {
	return api.CreateProductWithMedia(ctx, c.dispatcher, fields, files)
}

// GetProductMedia lists a product's media.
func (c *Client) GetProductMedia(ctx context.Context, productID int64) (json.RawMessage, error) {
	return api.GetProductMedia(ctx, c.dispatcher, productID)
}

// AddProductMedia attaches more files to a product.
func (c *Client) AddProductMedia(ctx context.Context, productID int64, files []MediaFile) (json.RawMessage, error) {
	return api.AddProductMedia(ctx, c.dispatcher, productID, files)
}

// UpdateProductMedia changes media metadata such as ordering or the primary flag.
func (c *Client) UpdateProductMedia(ctx context.Context, productID, mediaID int64, update any) (json.RawMessage, error) {
	return api.UpdateProductMedia(ctx, c.dispatcher, productID, mediaID, update)
}

// DeleteProductMedia removes one media item from a product.
func (c *Client) DeleteProductMedia(ctx context.Context, productID, mediaID int64) (json.RawMessage, error) {
	return api.DeleteProductMedia(ctx, c.dispatcher, productID, mediaID)
}

// UploadMedia uploads standalone files.
func (c *Client) UploadMedia(ctx context.Context, files []MediaFile) (json.RawMessage, error) {
	return api.UploadMedia(ctx, c.dispatcher, files)
}

// --------------------------------------------------------------------
// Cart operations
// --------------------------------------------------------------------

// GetCart returns the signed-in buyer's cart.
func (c *Client) GetCart(ctx context.Context) (json.RawMessage, error) {
	return api.GetCart(ctx, c.dispatcher)
}

// AddToCart adds quantity units of a product; quantities below 1 add one.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (json.RawMessage, error) {
	return api.AddToCart(ctx, c.dispatcher, productID, quantity)
}

// UpdateCartItem sets the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, productID int64, quantity int) (json.RawMessage, error) {
	return api.UpdateCartItem(ctx, c.dispatcher, productID, quantity)
}

// RemoveFromCart drops a product from the cart.
func (c *Client) RemoveFromCart(ctx context.Context, productID int64) (json.RawMessage, error) {
	return api.RemoveFromCart(ctx, c.dispatcher, productID)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) (json.RawMessage, error) {
	return api.ClearCart(ctx, c.dispatcher)
}

// --------------------------------------------------------------------
// Order operations
// --------------------------------------------------------------------

func (c *Client) GetOrders(ctx context.Context) (json.RawMessage, error) {
	return api.GetOrders(ctx, c.dispatcher)
}

func (c *Client) GetOrder(ctx context.Context, orderID int64) (json.RawMessage, error) {
	return api.GetOrder(ctx, c.dispatcher, orderID)
}

func (c *Client) CreateOrder(ctx context.Context, order any) (json.RawMessage, error) {
	return api.CreateOrder(ctx, c.dispatcher, order)
}

func (c *Client) CancelOrder(ctx context.Context, orderID int64) (json.RawMessage, error) {
	return api.CancelOrder(ctx, c.dispatcher, orderID)
}

// UpdateOrderStatus is the seller-side status change (e.g. "shipped").
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (json.RawMessage, error) {
	return api.UpdateOrderStatus(ctx, c.dispatcher, orderID, status)
}

func (c *Client) ProcessPayment(ctx context.Context, payment any) (json.RawMessage, error) {
	return api.ProcessPayment(ctx, c.dispatcher, payment)
}

// --------------------------------------------------------------------
// Seller operations
// --------------------------------------------------------------------

func (c *Client) GetSellerDashboard(ctx context.Context) (json.RawMessage, error) {
	return api.GetSellerDashboard(ctx, c.dispatcher)
}

func (c *Client) GetSellerProducts(ctx context.Context) (json.RawMessage, error) {
	return api.GetSellerProducts(ctx, c.dispatcher)
}

func (c *Client) GetSellerOrders(ctx context.Context) (json.RawMessage, error) {
	return api.GetSellerOrders(ctx, c.dispatcher)
}

func (c *Client) GetSellerStats(ctx context.Context) (json.RawMessage, error) {
	return api.GetSellerStats(ctx, c.dispatcher)
}

// --------------------------------------------------------------------
// Catalog, reviews, contact, profile
// --------------------------------------------------------------------

func (c *Client) GetCategories(ctx context.Context) (json.RawMessage, error) {
	return api.GetCategories(ctx, c.dispatcher)
}

func (c *Client) GetProductReviews(ctx context.Context, productID int64) (json.RawMessage, error) {
	return api.GetProductReviews(ctx, c.dispatcher, productID)
}

func (c *Client) CreateReview(ctx context.Context, productID int64, review any) (json.RawMessage, error) {
	return api.CreateReview(ctx, c.dispatcher, productID, review)
}

// SendContactMessage validates msg before sending it.
func (c *Client) SendContactMessage(ctx context.Context, msg ContactMessage) (json.RawMessage, error) {
	return api.SendContactMessage(ctx, c.dispatcher, msg)
}

func (c *Client) UpdateProfile(ctx context.Context, profile any) (json.RawMessage, error) {
	return api.UpdateProfile(ctx, c.dispatcher, profile)
}

func (c *Client) UpdateAddress(ctx context.Context, address any) (json.RawMessage, error) {
	return api.UpdateAddress(ctx, c.dispatcher, address)
}

// ChangePassword validates req before sending it.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (json.RawMessage, error) {
	return api.ChangePassword(ctx, c.dispatcher, req)
}

// Health pings the API.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	return api.Health(ctx, c.dispatcher)
}

// --------------------------------------------------------------------
// Bootstrap
// --------------------------------------------------------------------

// FeaturedLimit is how many featured products Bootstrap loads.
const FeaturedLimit = 6

// BootstrapResult is what a storefront front page needs on load.
type BootstrapResult struct {
	Categories json.RawMessage
	Featured   json.RawMessage
	Session    session.Session
}

// Bootstrap loads categories, featured products and the current user
// concurrently. A failed current-user lookup yields an anonymous session
// rather than an error; the other two calls fail the whole bootstrap.
func (c *Client) Bootstrap(ctx context.Context) (*BootstrapResult, error) {
	var res BootstrapResult
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := api.GetCategories(gctx, c.dispatcher)
		res.Categories = raw
		return err
	})
	g.Go(func() error {
		f := ProductFilters{Featured: true, Limit: FeaturedLimit}
		raw, err := api.GetProducts(gctx, c.dispatcher, f.Filters())
		res.Featured = raw
		return err
	})
	g.Go(func() error {
		s, err := c.GetCurrentUser(gctx)
		if err != nil {
			log.Debug().Err(err).Msg("no current user; continuing anonymously")
		}
		res.Session = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
