package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/wefund/wefund/internal/domain"
	"github.com/wefund/wefund/internal/dto"
	"github.com/wefund/wefund/internal/service/investservice"
	"github.com/wefund/wefund/internal/service/projectservice"
	"github.com/wefund/wefund/pkg/auth"
	"github.com/wefund/wefund/pkg/utils"
)

//go:generate mockgen -source=projects.go -destination=mocks.go -package=projects

type Service interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
}

type InvestService interface {
	Invest(ctx context.Context, userID, projectID string, amount decimal.Decimal) (*domain.Wallet, error)
}

type ProjectHandler struct {
	projectService Service
	investService  InvestService
}

func New(projectService Service, investService InvestService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		investService:  investService,
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

// ListProjects godoc
//
//	@Summary		List investable projects
//	@Description	List verified, unblocked projects past admin review.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProjectResponseDTO	"Projects"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ProjectResponseDTO, len(projects))
	for i, p := range projects {
		response[i] = projectDTO(&p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProject godoc
//
//	@Summary		Get a project
//	@Description	Get a single project by its ID.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"Project ID"
//	@Success		200	{object}	dto.ProjectResponseDTO	"Project"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Project not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	project, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, projectservice.ErrProjectNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, projectDTO(project))
}

// Invest godoc
//
//	@Summary		Invest in a project
//	@Description	Move funds from the wallet into the project and record the investment.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			request	body		dto.InvestRequestDTO	true	"Investment request payload"
//	@Success		200		{object}	dto.InvestResponseDTO	"Updated wallet state"
//	@Failure		400		{object}	utils.Response			"Invalid amount or below minimum"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Project not found"
//	@Failure		409		{object}	utils.Response			"Project not open for investment"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/projects/{id}/invest [post]
func (h *ProjectHandler) Invest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	projectID := chi.URLParam(r, "id")

	var req dto.InvestRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, err := h.investService.Invest(r.Context(), userID, projectID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, investservice.ErrInvalidAmount), errors.Is(err, investservice.ErrBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, investservice.ErrProjectNotFound), errors.Is(err, investservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, investservice.ErrProjectNotOpen):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, investservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InvestResponseDTO{
		Message:       "Investment successful",
		WalletBalance: wallet.WalletBalance,
		TotalInvested: wallet.TotalInvested,
	})
}
