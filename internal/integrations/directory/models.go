package directory

import "github.com/google/uuid"

// Business модель бизнеса из DirectoryService
type Business struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Slug       string      `json:"slug"`
	OwnerID    uuid.UUID   `json:"owner_id"`
	ManagerIDs []uuid.UUID `json:"manager_ids"`
	IsActive   bool        `json:"is_active"`
}

// IsManagedBy проверяет, имеет ли пользователь права управления бизнесом
func (b *Business) IsManagedBy(userID uuid.UUID) bool {
	if b.OwnerID == userID {
		return true
	}
	for _, id := range b.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Specialist модель специалиста из DirectoryService
type Specialist struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
