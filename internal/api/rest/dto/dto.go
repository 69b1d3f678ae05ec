package dto

import (
	"github.com/iryswiki/iryswiki/internal/domain"
)

// CreateThreadRequest is the body of POST /api/v1/threads
type CreateThreadRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// ToDomain converts the request to the forum input
func (r CreateThreadRequest) ToDomain() domain.NewThread {
	return domain.NewThread{
		Title:    r.Title,
		Category: domain.Category(r.Category),
		Content:  r.Content,
	}
}

// CreateReplyRequest is the body of POST /api/v1/threads/:id/replies
type CreateReplyRequest struct {
	Content string `json:"content"`
}

// SaveProfileRequest is the body of PUT /api/v1/profile
type SaveProfileRequest struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

// ToDomain converts the request to the forum input
func (r SaveProfileRequest) ToDomain() domain.ProfileInput {
	return domain.ProfileInput{
		Username:  r.Username,
		Bio:       r.Bio,
		AvatarURL: r.AvatarURL,
	}
}

// ReceiptResponse is returned by every paid mutation
type ReceiptResponse struct {
	TransactionHash string `json:"transactionHash"`
	ExplorerURL     string `json:"explorerUrl"`
}

// ThreadListResponse wraps a list of threads
type ThreadListResponse struct {
	Threads []domain.Thread `json:"threads"`
	Total   int             `json:"total"`
}

// TransactionListResponse wraps a list of ledger entries
type TransactionListResponse struct {
	Transactions []domain.VerifiedTransaction `json:"transactions"`
	Total        int                          `json:"total"`
}

// BalanceResponse is the session wallet balance
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Symbol  string `json:"symbol"`
}
