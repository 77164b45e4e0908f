package handlers

import (
	"errors"
	"net/http"

	"lexichat-backend/models"
	"lexichat-backend/service"

	"github.com/gin-gonic/gin"
)

// GenerateHandler handles HTTP requests for contract generation
type GenerateHandler struct {
	generationService *service.GenerationService
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(generationService *service.GenerationService) *GenerateHandler {
	return &GenerateHandler{generationService: generationService}
}

// GenerateContractRequest represents the request body for contract generation
type GenerateContractRequest struct {
	ContractType string `json:"contract_type" binding:"required"`
	PartyA       string `json:"party_a" binding:"required"`
	PartyB       string `json:"party_b" binding:"required"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`

	Position  string `json:"position"`
	Salary    string `json:"salary"`
	WorkHours string `json:"work_hours"`
	WorkDays  string `json:"work_days"`

	PropertyAddress string `json:"property_address"`
	Deposit         string `json:"deposit"`
	MonthlyRent     string `json:"monthly_rent"`
	MaintenanceFee  string `json:"maintenance_fee"`

	ProjectDescription string `json:"project_description"`
	ProjectAmount      string `json:"project_amount"`
	Deliverables       string `json:"deliverables"`
	PaymentTerms       string `json:"payment_terms"`
}

// GenerateContract handles POST /api/generate
func (h *GenerateHandler) GenerateContract(c *gin.Context) {
	var req GenerateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	contract, err := h.generationService.GenerateContract(c.Request.Context(), service.GenerateContractRequest{
		ContractType:       models.ContractType(req.ContractType),
		PartyA:             req.PartyA,
		PartyB:             req.PartyB,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Position:           req.Position,
		Salary:             req.Salary,
		WorkHours:          req.WorkHours,
		WorkDays:           req.WorkDays,
		PropertyAddress:    req.PropertyAddress,
		Deposit:            req.Deposit,
		MonthlyRent:        req.MonthlyRent,
		MaintenanceFee:     req.MaintenanceFee,
		ProjectDescription: req.ProjectDescription,
		ProjectAmount:      req.ProjectAmount,
		Deliverables:       req.Deliverables,
		PaymentTerms:       req.PaymentTerms,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedContractType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_CONTRACT_TYPE",
					"message": "contract_type must be one of employment, lease, freelance",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "GENERATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"contract": contract,
		},
	})
}
