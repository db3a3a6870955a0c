package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"gitlab.com/algoarena.net/internal/config"
	authsvc "gitlab.com/algoarena.net/internal/core/services/auth"
	"gitlab.com/algoarena.net/internal/domain"
	"gitlab.com/algoarena.net/internal/handlers/response"
	"gitlab.com/algoarena.net/internal/static/errs"
)

type ServiceDependencies struct {
	GGAuthService    authsvc.IAuthService
	LocalAuthService *authsvc.LocalAuthService
}

// GoogleUser struct to decode Google API response
type GoogleUser struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Handler struct {
	deps        *ServiceDependencies
	googleOAuth *oauth2.Config
}

func NewHandler(ggCfg *config.GGAuthConfig) *Handler {
	return &Handler{
		googleOAuth: &oauth2.Config{
			ClientID:     ggCfg.ClientID,
			ClientSecret: ggCfg.ClientSecret,
			RedirectURL:  ggCfg.RedirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, svcDep *ServiceDependencies) {
	h.deps = svcDep
	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/google", h.GoogleLoginHandler).Methods("GET")
	router.HandleFunc("/auth/callback", h.GoogleCallbackHandler).Methods("GET")
}

type RegisterRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteErr(w, errs.Validation)
		return
	}
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		response.WriteErr(w, errs.Validation)
		return
	}

	token, err := h.deps.LocalAuthService.Register(r.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		response.WriteErr(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, domain.LoginResponse{Token: token})
}

type LoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteErr(w, errs.Validation)
		return
	}

	token, err := h.deps.LocalAuthService.Login(r.Context(), &domain.Users{
		UserName:     req.UserName,
		PasswordHash: &req.Password,
	})
	if err != nil {
		response.WriteErr(w, err)
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: token})
}

// GoogleLoginHandler redirects the user to Google OAuth2 login
func (h *Handler) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	url := h.googleOAuth.AuthCodeURL("randomstate")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the Google OAuth2 callback
func (h *Handler) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No code in URL", http.StatusBadRequest)
		return
	}

	token, err := h.googleOAuth.Exchange(ctx, code)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	client := h.googleOAuth.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var googleUser GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.deps.GGAuthService.Login(ctx, &domain.Users{
		GoogleID:     &googleUser.ID,
		Email:        &googleUser.Email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Kind:       response.KindUnauthorized,
			Message:    err.Error(),
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: tokenStr})
}
