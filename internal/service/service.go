package service

import (
	adminh "github.com/wefund/wefund/internal/handlers/admin"
	authh "github.com/wefund/wefund/internal/handlers/auth"
	messagesh "github.com/wefund/wefund/internal/handlers/messages"
	projecth "github.com/wefund/wefund/internal/handlers/projects"

	"github.com/wefund/wefund/internal/notify"
	"github.com/wefund/wefund/internal/pg"
	"github.com/wefund/wefund/internal/repo"
	"github.com/wefund/wefund/internal/service/adminservice"
	"github.com/wefund/wefund/internal/service/authservice"
	"github.com/wefund/wefund/internal/service/investservice"
	"github.com/wefund/wefund/internal/service/messageservice"
	"github.com/wefund/wefund/internal/service/projectservice"
	"github.com/wefund/wefund/internal/service/walletservice"
	pkgauth "github.com/wefund/wefund/pkg/auth"
)

type Services struct {
	AuthService    authh.Service
	WalletService  *walletservice.Service
	InvestService  projecth.InvestService
	ProjectService projecth.Service
	MessageService messagesh.Service
	AdminService   adminh.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier *notify.Dispatcher) *Services {
	walletService := walletservice.New(repo.UserRepo, repo.TransactionRepo, txManager)
	investService := investservice.New(repo.UserRepo, repo.ProjectRepo, repo.TransactionRepo, txManager, notifier)
	projectService := projectservice.New(repo.ProjectRepo)
	messageService := messageservice.New(repo.UserRepo, repo.MessageRepo)
	adminService := adminservice.New(repo.UserRepo, repo.ProjectRepo, repo.TransactionRepo, txManager, notifier)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		WalletService:  walletService,
		InvestService:  investService,
		ProjectService: projectService,
		MessageService: messageService,
		AdminService:   adminService,
	}
}
