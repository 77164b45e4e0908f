package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lexichat-backend/extraction"
	"lexichat-backend/models"
	"lexichat-backend/repository"
	"lexichat-backend/service"
	"lexichat-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContractHandler handles HTTP requests for contract upload and analysis
type ContractHandler struct {
	contractRepo     *repository.ContractRepository
	analysisService  *service.AnalysisService
	fileStorage      storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractRepo *repository.ContractRepository, analysisService *service.AnalysisService, fileStorage storage.Storage) *ContractHandler {
	return &ContractHandler{
		contractRepo:    contractRepo,
		analysisService: analysisService,
		fileStorage:     fileStorage,
		maxFileSize:     10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"application/pdf": true,
			"image/jpeg":      true,
			"image/png":       true,
		},
	}
}

// UploadContract handles POST /api/contracts/upload
func (h *ContractHandler) UploadContract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
			},
		})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNSUPPORTED_FORMAT",
				"message": "Only PDF, JPEG and PNG files are supported",
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	contractType := models.ContractType(c.PostForm("contract_type"))
	switch contractType {
	case models.ContractTypeEmployment, models.ContractTypeLease, models.ContractTypeFreelance, models.ContractTypeOther:
	case "":
		contractType = models.ContractTypeOther
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CONTRACT_TYPE",
				"message": "contract_type must be one of employment, lease, freelance, other",
			},
		})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	contractID := uuid.New()
	storagePath, err := h.fileStorage.Upload(c.Request.Context(), contractID, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	contract := &models.Contract{
		ID:           contractID,
		Title:        title,
		ContractType: contractType,
		Filename:     fileHeader.Filename,
		MimeType:     mimeType,
		StoragePath:  storagePath,
		Status:       models.AnalysisPending,
	}

	if err := h.contractRepo.Create(c.Request.Context(), contract); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    contract,
	})
}

// GetContract handles GET /api/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid contract ID format",
			},
		})
		return
	}

	contract, err := h.contractRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Contract not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contract,
	})
}

// ListContracts handles GET /api/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.contractRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contracts,
	})
}

// AnalyzeContract handles POST /api/contracts/:id/analyze. Calling it again
// after a failure is the manual retry: the pipeline re-enters from pending.
func (h *ContractHandler) AnalyzeContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid contract ID format",
			},
		})
		return
	}

	result, err := h.analysisService.ProcessContract(c.Request.Context(), id)
	if err != nil {
		status, code, message := analysisErrorResponse(err)
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": message,
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"contract_id": id,
			"risk_level":  result.OverallRisk,
			"result":      result,
		},
	})
}

// analysisErrorResponse maps pipeline errors to HTTP responses
func analysisErrorResponse(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		return http.StatusNotFound, "NOT_FOUND", "Contract not found"
	case errors.Is(err, extraction.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "지원하지 않는 파일 형식입니다"
	case errors.Is(err, service.ErrTextExtraction):
		return http.StatusBadRequest, "EXTRACTION_FAILED", "텍스트를 충분히 추출할 수 없습니다. 더 선명한 이미지를 업로드해주세요."
	case errors.Is(err, service.ErrResponseParse):
		return http.StatusInternalServerError, "ANALYSIS_PARSE_FAILED", "AI 분석 결과 파싱에 실패했습니다"
	default:
		return http.StatusInternalServerError, "ANALYSIS_FAILED", err.Error()
	}
}

// inferMimeType guesses the MIME type from the file extension when the
// client did not send a Content-Type
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	default:
		return ""
	}
}
