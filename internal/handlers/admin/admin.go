package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/adminservice"
	"github.com/wefund/wefund/pkg/auth"
	"github.com/wefund/wefund/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mocks.go -package=admin

type Service interface {
	ConfirmPendingDeposit(ctx context.Context, ref, adminID string) (*domain.Wallet, *domain.Transaction, error)
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	VerifyProject(ctx context.Context, projectID string) (*domain.Project, error)
	BlockProject(ctx context.Context, projectID string, blocked bool) (*domain.Project, error)
	VerifyUser(ctx context.Context, userID string) (*domain.User, error)
	BlockUser(ctx context.Context, userID string, blocked bool) (*domain.User, error)
	GetStats(ctx context.Context) (*adminservice.Stats, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func userDTO(u *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Age:           u.Age,
		Role:          u.Role,
		WalletBalance: u.WalletBalance,
		TotalInvested: u.TotalInvested,
		TotalReturns:  u.TotalReturns,
		Verified:      u.Verified,
		Blocked:       u.Blocked,
		MemberSince:   u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func projectDTO(p *domain.Project) dto.ProjectResponseDTO {
	return dto.ProjectResponseDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		ROI:           p.ROI,
		Duration:      p.Duration,
		FundingGoal:   p.FundingGoal,
		FundedAmount:  p.FundedAmount,
		MinInvestment: p.MinInvestment,
		RiskLevel:     p.RiskLevel,
		Status:        p.Status,
		Category:      p.Category,
		Image:         p.Image,
		Investors:     p.InvestorCount,
		CreatedAt:     p.CreatedAt,
	}
}

// ConfirmDeposit godoc
//
//	@Summary		Confirm a pending mobile money deposit
//	@Description	Complete a pending deposit by its reference and credit the user's wallet exactly once.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmDepositRequestDTO	true	"Confirmation payload"
//	@Success		200		{object}	dto.ConfirmDepositResponseDTO	"Confirmed transaction"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		404		{object}	utils.Response					"Transaction not found"
//	@Failure		409		{object}	utils.Response					"Transaction already completed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/momo/confirm [post]
func (h *AdminHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.ConfirmDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TransactionRef == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, transaction, err := h.adminService.ConfirmPendingDeposit(r.Context(), req.TransactionRef, adminID)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrTransactionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adminservice.ErrAlreadyCompleted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmDepositResponseDTO{
		Message:        "Deposit confirmed successfully",
		TransactionRef: transaction.TransactionRef,
		Amount:         transaction.Amount,
		UserID:         transaction.UserID,
	})
}

// CreateProject godoc
//
//	@Summary		Create a project
//	@Description	Create a new project in pending status awaiting review.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProjectCreateRequestDTO	true	"Project payload"
//	@Success		200		{object}	dto.ProjectResponseDTO		"Created project"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/projects [post]
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.adminService.CreateProject(r.Context(), &domain.Project{
		Title:         req.Title,
		Description:   req.Description,
		ROI:           req.ROI,
		Duration:      req.Duration,
		FundingGoal:   req.FundingGoal,
		MinInvestment: req.MinInvestment,
		RiskLevel:     req.RiskLevel,
		Category:      req.Category,
		Image:         req.Image,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projectDTO(project))
}

// VerifyProject godoc
//
//	@Summary		Verify a project
//	@Description	Approve a reviewed project and open it for investment.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	dto.ProjectResponseDTO	"Verified project"
//	@Failure		404	{object}	utils.Response			"Project not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/projects/{id}/verify [put]
func (h *AdminHandler) VerifyProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	project, err := h.adminService.VerifyProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, adminservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projectDTO(project))
}

// BlockProject godoc
//
//	@Summary		Block or unblock a project
//	@Description	Toggle the investment-disabling flag on a project.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		dto.BlockRequestDTO		true	"Block payload"
//	@Success		200		{object}	dto.ProjectResponseDTO	"Updated project"
//	@Failure		404		{object}	utils.Response			"Project not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/projects/{id}/block [put]
func (h *AdminHandler) BlockProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	var req dto.BlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.adminService.BlockProject(r.Context(), projectID, req.Blocked)
	if err != nil {
		if errors.Is(err, adminservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projectDTO(project))
}

// VerifyUser godoc
//
//	@Summary		Verify a user
//	@Description	Mark a user account as verified for investment eligibility.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	dto.UserResponseDTO		"Verified user"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{id}/verify [put]
func (h *AdminHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.adminService.VerifyUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userDTO(user))
}

// BlockUser godoc
//
//	@Summary		Block or unblock a user
//	@Description	Toggle the blocked flag on a user account.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		dto.BlockRequestDTO	true	"Block payload"
//	@Success		200		{object}	dto.UserResponseDTO	"Updated user"
//	@Failure		404		{object}	utils.Response		"User not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/users/{id}/block [put]
func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.BlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.adminService.BlockUser(r.Context(), userID, req.Blocked)
	if err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, userDTO(user))
}

// GetStats godoc
//
//	@Summary		Platform statistics
//	@Description	Aggregate user, project and transaction counters for the admin dashboard.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO	"Platform statistics"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalUsers:       stats.TotalUsers,
		VerifiedUsers:    stats.VerifiedUsers,
		TotalProjects:    stats.TotalProjects,
		ActiveProjects:   stats.ActiveProjects,
		PendingProjects:  stats.PendingProjects,
		TotalInvestments: stats.TotalInvestments,
		TotalDeposits:    stats.TotalDeposits,
	})
}
