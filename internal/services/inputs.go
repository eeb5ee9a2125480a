package services

// Mutation inputs. Creation accepts any shape; absent settings default to
// all checks disabled and a file without an uploader inherits the
// upload's.

type CreateUserInput struct {
	AccountID     string  `json:"account_id"`
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	WalletAddress *string `json:"wallet_address"`
}

type FileInput struct {
	UserID      *string `json:"user_id"`
	Name        string  `json:"name"`
	ContentType *string `json:"content_type"`
	Size        *int64  `json:"size"`
	StorageURL  *string `json:"storage_url"`
}

type SettingsInput struct {
	FactCheck           bool `json:"fact_check"`
	LogicalFallacyCheck bool `json:"logical_fallacy_check"`
	AIGenerationCheck   bool `json:"ai_generation_check"`
}

type CreateUploadInput struct {
	UserID   *string        `json:"user_id"`
	Files    []FileInput    `json:"files"`
	Settings *SettingsInput `json:"settings"`
}
