package repository

import (
	"context"

	"lexichat-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContractRepository handles database operations for contracts
type ContractRepository struct {
	db *pgxpool.Pool
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

// Create creates a new contract record
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	query := `
		INSERT INTO contracts (
			id, title, contract_type, filename, mime_type, storage_path, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		contract.ID,
		contract.Title,
		contract.ContractType,
		contract.Filename,
		contract.MimeType,
		contract.StoragePath,
		contract.Status,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)

	return err
}

// GetByID retrieves a contract by ID
func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	contract := &models.Contract{}
	query := `
		SELECT id, title, contract_type, filename, mime_type, storage_path,
			status, error_message, extracted_text, risk_level, analysis_result,
			created_at, updated_at
		FROM contracts
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&contract.ID,
		&contract.Title,
		&contract.ContractType,
		&contract.Filename,
		&contract.MimeType,
		&contract.StoragePath,
		&contract.Status,
		&contract.ErrorMessage,
		&contract.ExtractedText,
		&contract.RiskLevel,
		&contract.AnalysisResult,
		&contract.CreatedAt,
		&contract.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return contract, nil
}

// List retrieves all contracts, newest first
func (r *ContractRepository) List(ctx context.Context) ([]*models.Contract, error) {
	query := `
		SELECT id, title, contract_type, filename, mime_type, storage_path,
			status, error_message, extracted_text, risk_level, analysis_result,
			created_at, updated_at
		FROM contracts
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contracts := make([]*models.Contract, 0)
	for rows.Next() {
		contract := &models.Contract{}
		err := rows.Scan(
			&contract.ID,
			&contract.Title,
			&contract.ContractType,
			&contract.Filename,
			&contract.MimeType,
			&contract.StoragePath,
			&contract.Status,
			&contract.ErrorMessage,
			&contract.ExtractedText,
			&contract.RiskLevel,
			&contract.AnalysisResult,
			&contract.CreatedAt,
			&contract.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	return contracts, rows.Err()
}

// UpdateStatus updates the analysis status of a contract and clears any
// previous error message
func (r *ContractRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AnalysisStatus) error {
	query := `
		UPDATE contracts SET
			status = $2,
			error_message = NULL,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	return err
}

// UpdateAnalysis stores the extracted text and analysis result and marks the
// contract completed
func (r *ContractRepository) UpdateAnalysis(ctx context.Context, id uuid.UUID, extractedText string, result *models.AnalysisResult) error {
	query := `
		UPDATE contracts SET
			status = $2,
			extracted_text = $3,
			risk_level = $4,
			analysis_result = $5,
			error_message = NULL,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.AnalysisCompleted, extractedText, result.OverallRisk, result)
	return err
}

// Fail marks a contract's analysis as failed with an error message
func (r *ContractRepository) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	query := `
		UPDATE contracts SET
			status = $2,
			error_message = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.AnalysisFailed, errorMessage)
	return err
}
