// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/middleware"
	"github.com/avdeyev/av_go_tiny_link/internal/api/rest/modeldto"
	"github.com/avdeyev/av_go_tiny_link/internal/config"
	"github.com/avdeyev/av_go_tiny_link/internal/logger"
	"github.com/avdeyev/av_go_tiny_link/internal/service/auth"
	serviceErrors "github.com/avdeyev/av_go_tiny_link/internal/service/errors"
	"github.com/avdeyev/av_go_tiny_link/internal/service/session"
	storageErrors "github.com/avdeyev/av_go_tiny_link/internal/storage/errors"
)

const handlerTimeout = 500 * time.Millisecond

// LinkHandler defines data structure handling and provides support for adding new implementations.
type LinkHandler struct {
	authorizer auth.Authorizer
	sessions   session.Manager
	serverCfg  *config.ServerConfig
	secretCfg  *config.SecretConfig
}

// InitLinkHandler initializes a LinkHandler object and sets its attributes.
func InitLinkHandler(authorizer auth.Authorizer, sessions session.Manager, serverCfg *config.ServerConfig, secretCfg *config.SecretConfig) (*LinkHandler, error) {
	if authorizer == nil {
		return nil, &serviceErrors.ServiceFoundNilProcessor{Msg: "nil Authorizer was passed to handler initializer"}
	}
	if sessions == nil {
		return nil, &serviceErrors.ServiceFoundNilProcessor{Msg: "nil session Manager was passed to handler initializer"}
	}
	return &LinkHandler{
		authorizer: authorizer,
		sessions:   sessions,
		serverCfg:  serverCfg,
		secretCfg:  secretCfg,
	}, nil
}

// writeError translates the error taxonomy into HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFoundError      *storageErrors.NotFoundError
		forbiddenError     *storageErrors.ForbiddenError
		emailConflictError *storageErrors.EmailConflictError
		userNotFoundError  *storageErrors.UserNotFoundError
		timeoutError       *storageErrors.ContextTimeoutExceededError
		validationError    *serviceErrors.ValidationError
		unauthorizedError  *serviceErrors.UnauthorizedError
	)
	switch {
	case errors.As(err, &notFoundError), errors.As(err, &userNotFoundError):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &forbiddenError):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.As(err, &emailConflictError):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &validationError):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unauthorizedError):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.As(err, &timeoutError):
		w.WriteHeader(http.StatusGatewayTimeout)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// setSessionCookie issues a session token for the principal and attaches it to
// the response.
func (h *LinkHandler) setSessionCookie(w http.ResponseWriter, p auth.Principal) error {
	token, err := h.sessions.Issue(p.UserID())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:  h.secretCfg.AuthKey,
		Value: token,
		Path:  "/",
	})
	return nil
}

// HandlePostURL accepts JSON as {"url":"<some_url>"} and provides client with
// JSON as {"result":"<short_url>"}. Any principal may shorten; authenticated
// principals own the created link.
func (h *LinkHandler) HandlePostURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		var post modeldto.RequestURL
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		principal := middleware.PrincipalFromContext(r.Context())
		sURL, err := h.authorizer.Shorten(ctx, principal, post.URL)
		if err != nil {
			logger.Log.Debugln("HandlePostURL:", err)
			writeError(w, err)
			return
		}
		logger.Log.Debugln("HandlePostURL: stored", post.URL, "as", sURL)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(modeldto.ResponseURL{ShortURL: h.serverCfg.BaseURL + "/" + sURL})
	}
}

// HandleGetURL provides client with a redirect to the original URL accessed by
// its short code. Redirects are public.
func (h *LinkHandler) HandleGetURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		sURL := chi.URLParam(r, "linkID")
		URL, err := h.authorizer.Resolve(ctx, sURL)
		if err != nil {
			logger.Log.Debugln("HandleGetURL:", err)
			writeError(w, err)
			return
		}
		w.Header().Set("Location", URL)
		w.WriteHeader(http.StatusTemporaryRedirect)
	}
}

// HandleGetUserURLs provides client with all links owned by the current principal.
func (h *LinkHandler) HandleGetUserURLs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		principal := middleware.PrincipalFromContext(r.Context())
		links, err := h.authorizer.ListMine(ctx, principal)
		if err != nil {
			logger.Log.Debugln("HandleGetUserURLs:", err)
			writeError(w, err)
			return
		}
		response := make([]modeldto.ResponseLink, 0, len(links))
		for _, link := range links {
			response = append(response, modeldto.ResponseLink{
				ShortURL:    h.serverCfg.BaseURL + "/" + link.SURL,
				OriginalURL: link.URL,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// HandleGetUserURL provides client with one owned link record.
func (h *LinkHandler) HandleGetUserURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		sURL := chi.URLParam(r, "linkID")
		principal := middleware.PrincipalFromContext(r.Context())
		link, err := h.authorizer.ViewOne(ctx, principal, sURL)
		if err != nil {
			logger.Log.Debugln("HandleGetUserURL:", err)
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(modeldto.ResponseLink{
			ShortURL:    h.serverCfg.BaseURL + "/" + link.SURL,
			OriginalURL: link.URL,
		})
	}
}

// HandlePutUserURL replaces the target URL of an owned link.
func (h *LinkHandler) HandlePutUserURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		var post modeldto.RequestURL
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sURL := chi.URLParam(r, "linkID")
		principal := middleware.PrincipalFromContext(r.Context())
		if err := h.authorizer.EditLongURL(ctx, principal, sURL, post.URL); err != nil {
			logger.Log.Debugln("HandlePutUserURL:", err)
			writeError(w, err)
			return
		}
		logger.Log.Debugln("HandlePutUserURL: updated", sURL, "to", post.URL)
		w.WriteHeader(http.StatusOK)
	}
}

// HandleDeleteUserURL removes an owned link.
func (h *LinkHandler) HandleDeleteUserURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		sURL := chi.URLParam(r, "linkID")
		principal := middleware.PrincipalFromContext(r.Context())
		if err := h.authorizer.Remove(ctx, principal, sURL); err != nil {
			logger.Log.Debugln("HandleDeleteUserURL:", err)
			writeError(w, err)
			return
		}
		logger.Log.Debugln("HandleDeleteUserURL: removed", sURL)
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleRegister creates an account from JSON credentials and opens a session
// for it.
func (h *LinkHandler) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		var post modeldto.RequestCredentials
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		principal, err := h.authorizer.Register(ctx, post.Email, post.Password)
		if err != nil {
			logger.Log.Debugln("HandleRegister:", err)
			writeError(w, err)
			return
		}
		if err := h.setSessionCookie(w, principal); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		logger.Log.Debugln("HandleRegister: registered", post.Email)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(modeldto.ResponseUser{ID: principal.UserID(), Email: post.Email})
	}
}

// HandleLogin verifies JSON credentials and opens a session.
func (h *LinkHandler) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		var post modeldto.RequestCredentials
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		principal, err := h.authorizer.Login(ctx, post.Email, post.Password)
		if err != nil {
			logger.Log.Debugln("HandleLogin:", err)
			writeError(w, err)
			return
		}
		if err := h.setSessionCookie(w, principal); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		logger.Log.Debugln("HandleLogin: authenticated", post.Email)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(modeldto.ResponseUser{ID: principal.UserID(), Email: post.Email})
	}
}

// HandleLogout clears the session cookie unconditionally.
func (h *LinkHandler) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middleware.PrincipalFromContext(r.Context())
		_ = h.authorizer.Logout(principal)
		http.SetCookie(w, &http.Cookie{
			Name:   h.secretCfg.AuthKey,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}
