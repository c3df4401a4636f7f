package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wefund/wefund/docs"
	adminhandlers "github.com/wefund/wefund/internal/handlers/admin"
	authhandlers "github.com/wefund/wefund/internal/handlers/auth"
	messagehandlers "github.com/wefund/wefund/internal/handlers/messages"
	momohandlers "github.com/wefund/wefund/internal/handlers/momo"
	projecthandlers "github.com/wefund/wefund/internal/handlers/projects"
	wallethandlers "github.com/wefund/wefund/internal/handlers/wallet"
	"github.com/wefund/wefund/internal/service"
	"github.com/wefund/wefund/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mocks.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	GetWallet(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
	Invest(w http.ResponseWriter, r *http.Request)
}

type MomoHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	ListConversations(w http.ResponseWriter, r *http.Request)
	GetDialog(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ConfirmDeposit(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	VerifyProject(w http.ResponseWriter, r *http.Request)
	BlockProject(w http.ResponseWriter, r *http.Request)
	VerifyUser(w http.ResponseWriter, r *http.Request)
	BlockUser(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	ProjectHandler ProjectHandler
	MomoHandler    MomoHandler
	MessageHandler MessageHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		ProjectHandler: projecthandlers.New(s.ProjectService, s.InvestService),
		MomoHandler:    momohandlers.New(s.WalletService),
		MessageHandler: messagehandlers.New(s.MessageService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.WalletHandler.GetProfile)
				r.Get("/wallet", h.WalletHandler.GetWallet)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.ProjectHandler.ListProjects)
				r.Get("/{id}", h.ProjectHandler.GetProject)
				r.Post("/{id}/invest", h.ProjectHandler.Invest)
			})
			r.Route("/messages", func(r chi.Router) {
				r.Get("/", h.MessageHandler.ListConversations)
				r.Post("/send", h.MessageHandler.Send)
				r.Get("/{id}", h.MessageHandler.GetDialog)
			})
			r.Route("/mobile-money", func(r chi.Router) {
				r.Post("/deposit", h.MomoHandler.Deposit)
				r.Post("/withdraw", h.MomoHandler.Withdraw)
				r.Get("/transactions", h.MomoHandler.GetTransactions)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Post("/projects", h.AdminHandler.CreateProject)
				r.Put("/projects/{id}/verify", h.AdminHandler.VerifyProject)
				r.Put("/projects/{id}/block", h.AdminHandler.BlockProject)
				r.Put("/users/{id}/verify", h.AdminHandler.VerifyUser)
				r.Put("/users/{id}/block", h.AdminHandler.BlockUser)
				r.Post("/momo/confirm", h.AdminHandler.ConfirmDeposit)
				r.Get("/stats", h.AdminHandler.GetStats)
			})
		})
	})

	return r
}
