package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/suite"

	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/middleware"
	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/modeldto"
	"github.com/avdeyev/av_go_tiny_link/internal/config"
	authService "github.com/avdeyev/av_go_tiny_link/internal/service/auth/v1"
	identifierService "github.com/avdeyev/av_go_tiny_link/internal/service/identifier/v1"
	sessionService "github.com/avdeyev/av_go_tiny_link/internal/service/session/v1"
	shortenerService "github.com/avdeyev/av_go_tiny_link/internal/service/shortener/v1"
	userdirService "github.com/avdeyev/av_go_tiny_link/internal/service/userdir/v1"
	"github.com/avdeyev/av_go_tiny_link/internal/storage/inmemory"
)

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// HandlersTestSuite runs the full stack over an in-memory store.
type HandlersTestSuite struct {
	suite.Suite
	cfg    *config.Config
	server *httptest.Server
	client *resty.Client
}

func (suite *HandlersTestSuite) SetupTest() {
	cfg, err := config.NewDefaultConfiguration()
	suite.Require().NoError(err)
	suite.cfg = cfg

	st := inmemory.InitStorage()
	generator := identifierService.NewGenerator()
	processor, err := shortenerService.InitShortener(generator, st)
	suite.Require().NoError(err)
	directory, err := userdirService.InitUserDirectory(st)
	suite.Require().NoError(err)
	authorizer, err := authService.InitService(directory, processor)
	suite.Require().NoError(err)
	sessions := sessionService.NewManager(cfg.SecretConfig)
	linkHandler, err := InitLinkHandler(authorizer, sessions, cfg.ServerConfig, cfg.SecretConfig)
	suite.Require().NoError(err)
	principalHandler, err := middleware.NewPrincipalHandler(sessions, cfg.SecretConfig)
	suite.Require().NoError(err)

	r := chi.NewRouter()
	r.Use(principalHandler.PrincipalHandle)
	r.Post("/api/shorten", linkHandler.HandlePostURL())
	r.Get("/{linkID}", linkHandler.HandleGetURL())
	r.Get("/api/user/urls", linkHandler.HandleGetUserURLs())
	r.Get("/api/user/urls/{linkID}", linkHandler.HandleGetUserURL())
	r.Put("/api/user/urls/{linkID}", linkHandler.HandlePutUserURL())
	r.Delete("/api/user/urls/{linkID}", linkHandler.HandleDeleteUserURL())
	r.Post("/api/user/register", linkHandler.HandleRegister())
	r.Post("/api/user/login", linkHandler.HandleLogin())
	r.Post("/api/user/logout", linkHandler.HandleLogout())

	suite.server = httptest.NewServer(r)
	suite.client = resty.New().SetRedirectPolicy(resty.NoRedirectPolicy()).SetCookieJar(nil)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.server.Close()
}

// register creates an account and returns its session cookie.
func (suite *HandlersTestSuite) register(email, password string) *http.Cookie {
	res, err := suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: email, Password: password}).
		Post(suite.server.URL + "/api/user/register")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	for _, cookie := range res.Cookies() {
		if cookie.Name == suite.cfg.SecretConfig.AuthKey {
			return cookie
		}
	}
	suite.Require().FailNow("no session cookie in register response")
	return nil
}

// shorten stores URL and returns the assigned short code.
func (suite *HandlersTestSuite) shorten(cookie *http.Cookie, URL string) string {
	req := suite.client.R().SetBody(modeldto.RequestURL{URL: URL})
	if cookie != nil {
		req.SetCookie(cookie)
	}
	var response modeldto.ResponseURL
	res, err := req.SetResult(&response).Post(suite.server.URL + "/api/shorten")
	suite.Require().NoError(err)
	suite.Require().Equal(http.StatusCreated, res.StatusCode())
	parts := strings.Split(response.ShortURL, "/")
	return parts[len(parts)-1]
}

func (suite *HandlersTestSuite) TestShortenAndResolve() {
	sURL := suite.shorten(nil, "https://www.yandex.ru")
	suite.Len(sURL, 6)
	for _, r := range sURL {
		suite.True(strings.ContainsRune(codeAlphabet, r), "unexpected symbol %q in code %q", r, sURL)
	}
	res, _ := suite.client.R().Get(suite.server.URL + "/" + sURL)
	suite.Equal(http.StatusTemporaryRedirect, res.StatusCode())
	suite.Equal("https://www.yandex.ru", res.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestResolveUnknownCode() {
	res, err := suite.client.R().Get(suite.server.URL + "/zzzzzz")
	suite.NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestOwnedLinkLifecycle() {
	owner := suite.register("a@x.com", "pw1")
	other := suite.register("b@x.com", "pw2")
	sURL := suite.shorten(owner, "https://www.yandex.ru")

	// owner sees the link in the listing
	var links []modeldto.ResponseLink
	res, err := suite.client.R().SetCookie(owner).SetResult(&links).Get(suite.server.URL + "/api/user/urls")
	suite.NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Require().Len(links, 1)
	suite.Equal("https://www.yandex.ru", links[0].OriginalURL)

	// and can fetch the single record
	var link modeldto.ResponseLink
	res, err = suite.client.R().SetCookie(owner).SetResult(&link).Get(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("https://www.yandex.ru", link.OriginalURL)

	// another account may not edit the link, the target stays intact
	res, err = suite.client.R().SetCookie(other).
		SetBody(modeldto.RequestURL{URL: "https://www.google.com"}).
		Put(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, _ = suite.client.R().Get(suite.server.URL + "/" + sURL)
	suite.Equal("https://www.yandex.ru", res.Header().Get("Location"))

	// the owner may
	res, err = suite.client.R().SetCookie(owner).
		SetBody(modeldto.RequestURL{URL: "https://www.google.com"}).
		Put(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	res, _ = suite.client.R().Get(suite.server.URL + "/" + sURL)
	suite.Equal("https://www.google.com", res.Header().Get("Location"))

	// removal by another account is forbidden, by the owner succeeds
	res, err = suite.client.R().SetCookie(other).Delete(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, err = suite.client.R().SetCookie(owner).Delete(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusNoContent, res.StatusCode())
	res, err = suite.client.R().Get(suite.server.URL + "/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestAnonymousMutationIsForbidden() {
	owner := suite.register("a@x.com", "pw1")
	sURL := suite.shorten(owner, "https://www.yandex.ru")

	res, err := suite.client.R().Get(suite.server.URL + "/api/user/urls")
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, err = suite.client.R().Get(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, err = suite.client.R().
		SetBody(modeldto.RequestURL{URL: "https://www.google.com"}).
		Put(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
	res, err = suite.client.R().Delete(suite.server.URL + "/api/user/urls/" + sURL)
	suite.NoError(err)
	suite.Equal(http.StatusForbidden, res.StatusCode())
}

func (suite *HandlersTestSuite) TestRegisterValidation() {
	res, err := suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: "", Password: ""}).
		Post(suite.server.URL + "/api/user/register")
	suite.NoError(err)
	suite.Equal(http.StatusBadRequest, res.StatusCode())
}

func (suite *HandlersTestSuite) TestRegisterEmailConflict() {
	_ = suite.register("a@x.com", "pw1")
	res, err := suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: "a@x.com", Password: "pw2"}).
		Post(suite.server.URL + "/api/user/register")
	suite.NoError(err)
	suite.Equal(http.StatusConflict, res.StatusCode())
}

func (suite *HandlersTestSuite) TestLogin() {
	_ = suite.register("a@x.com", "pw1")

	res, err := suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: "missing@x.com", Password: "pw1"}).
		Post(suite.server.URL + "/api/user/login")
	suite.NoError(err)
	suite.Equal(http.StatusUnauthorized, res.StatusCode())

	res, err = suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: "a@x.com", Password: "pw2"}).
		Post(suite.server.URL + "/api/user/login")
	suite.NoError(err)
	suite.Equal(http.StatusUnauthorized, res.StatusCode())

	var user modeldto.ResponseUser
	res, err = suite.client.R().
		SetBody(modeldto.RequestCredentials{Email: "a@x.com", Password: "pw1"}).
		SetResult(&user).
		Post(suite.server.URL + "/api/user/login")
	suite.NoError(err)
	suite.Equal(http.StatusOK, res.StatusCode())
	suite.Equal("a@x.com", user.Email)
	suite.NotEmpty(user.ID)
}

func (suite *HandlersTestSuite) TestLogoutClearsSessionCookie() {
	cookie := suite.register("a@x.com", "pw1")
	res, err := suite.client.R().SetCookie(cookie).Post(suite.server.URL + "/api/user/logout")
	suite.NoError(err)
	suite.Equal(http.StatusNoContent, res.StatusCode())
	var cleared bool
	for _, c := range res.Cookies() {
		if c.Name == suite.cfg.SecretConfig.AuthKey && c.MaxAge < 0 {
			cleared = true
		}
	}
	suite.True(cleared, "session cookie was not invalidated")
}

func (suite *HandlersTestSuite) TestPostURLBadJSON() {
	res, err := suite.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody("not-a-json").
		Post(suite.server.URL + "/api/shorten")
	suite.NoError(err)
	suite.Equal(http.StatusBadRequest, res.StatusCode())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
