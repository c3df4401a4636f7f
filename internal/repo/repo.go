package repo

import (
	"github.com/wefund/wefund/internal/pg"
	messagerepo "github.com/wefund/wefund/internal/repo/message-repo"
	projectrepo "github.com/wefund/wefund/internal/repo/project-repo"
	transactionrepo "github.com/wefund/wefund/internal/repo/transaction-repo"
	userrepo "github.com/wefund/wefund/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ProjectRepo     *projectrepo.Repository
	TransactionRepo *transactionrepo.Repository
	MessageRepo     *messagerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ProjectRepo:     projectrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		MessageRepo:     messagerepo.New(conn),
	}
}
