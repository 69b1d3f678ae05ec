package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// ActionKind represents a paid mutation
type ActionKind string

const (
	ActionThread  ActionKind = "THREAD"
	ActionReply   ActionKind = "REPLY"
	ActionProfile ActionKind = "PROFILE"
)

// IsValidAction checks if an action kind is one of the paid mutations
func IsValidAction(action ActionKind) bool {
	return action == ActionThread ||
		action == ActionReply ||
		action == ActionProfile
}

// ParseActionKind parses an action kind case-insensitively
func ParseActionKind(s string) (ActionKind, error) {
	action := ActionKind(strings.ToUpper(strings.TrimSpace(s)))
	if !IsValidAction(action) {
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, s)
	}
	return action, nil
}

// Purpose tags a verified transaction with the action it paid for
type Purpose string

const (
	PurposeThread  Purpose = Purpose(ActionThread)
	PurposeReply   Purpose = Purpose(ActionReply)
	PurposeProfile Purpose = Purpose(ActionProfile)
	PurposeUnknown Purpose = "UNKNOWN"
)

// Category represents a thread category
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryBlockchain    Category = "blockchain"
	CategoryDevelopment   Category = "development"
	CategoryTutorials     Category = "tutorials"
	CategoryAnnouncements Category = "announcements"
)

// Categories returns every thread category in display order
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryBlockchain,
		CategoryDevelopment,
		CategoryTutorials,
		CategoryAnnouncements,
	}
}

// IsValidCategory checks if a category is known
func IsValidCategory(category Category) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Thread is a forum topic. Timestamps are unix milliseconds.
type Thread struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      Category `json:"category"`
	Content       string   `json:"content"`
	Author        string   `json:"author"`
	TransactionID string   `json:"transactionId"`
	Replies       int      `json:"replies"`
	Views         int      `json:"views"`
	Likes         int      `json:"likes"`
	LastActivity  int64    `json:"lastActivity"`
	CreatedAt     int64    `json:"createdAt"`
	RepliesData   []Reply  `json:"repliesData"`
}

// Key returns the thread identity
func (t Thread) Key() string {
	return t.ID
}

// Reply is a response embedded in its parent thread
type Reply struct {
	ID            string `json:"id"`
	ThreadID      string `json:"threadId"`
	Content       string `json:"content"`
	Author        string `json:"author"`
	TransactionID string `json:"transactionId"`
	CreatedAt     int64  `json:"createdAt"`
	Likes         int    `json:"likes"`
}

// Profile is the identity card of a wallet. One per address.
type Profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Bio           string `json:"bio,omitempty"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
	WalletAddress string `json:"walletAddress"`
	TransactionID string `json:"transactionId"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// Key returns the profile identity, the lower-cased wallet address
func (p Profile) Key() string {
	return NormalizeAddress(p.WalletAddress)
}

// VerifiedTransaction is a ledger entry for a payment that passed verification
type VerifiedTransaction struct {
	Hash      string  `json:"hash"`
	From      string  `json:"from"`
	Amount    string  `json:"amount"`
	Purpose   Purpose `json:"purpose"`
	Timestamp int64   `json:"timestamp"`
	Verified  bool    `json:"verified"`
}

// Key returns the ledger identity, the lower-cased transaction hash
func (v VerifiedTransaction) Key() string {
	return strings.ToLower(v.Hash)
}

// ChainTransaction is the subset of an on-chain transaction used for verification
type ChainTransaction struct {
	Hash  string
	From  string
	To    string // empty for contract creation
	Value *big.Int
}

// Requirement describes what a caller must pay for an action
type Requirement struct {
	Action    ActionKind `json:"action"`
	Amount    string     `json:"amount"`
	Recipient string     `json:"recipient"`
	Symbol    string     `json:"symbol"`
}

// NewThread is the caller input for thread creation
type NewThread struct {
	Title    string   `json:"title" validate:"required,max=200"`
	Category Category `json:"category" validate:"required,category"`
	Content  string   `json:"content" validate:"required"`
}

// NewReply is the caller input for a reply
type NewReply struct {
	Content string `json:"content" validate:"required"`
}

// ProfileInput is the caller input for saving a profile
type ProfileInput struct {
	Username  string `json:"username" validate:"required,max=50"`
	Bio       string `json:"bio" validate:"max=500"`
	AvatarURL string `json:"avatarUrl"`
}

// StorageStats summarises the stored collections
type StorageStats struct {
	Threads            int                   `json:"threads"`
	Profiles           int                   `json:"profiles"`
	VerifiedTxs        int                   `json:"verifiedTransactions"`
	RecentThreads      []Thread              `json:"recentThreads"`
	RecentTransactions []VerifiedTransaction `json:"recentTransactions"`
}

// NormalizeAddress lower-cases and trims an address for comparison
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// ContentEventType represents what a published content event reports
type ContentEventType string

const (
	ContentEventThreadCreated ContentEventType = "thread_created"
	ContentEventReplyCreated  ContentEventType = "reply_created"
	ContentEventProfileSaved  ContentEventType = "profile_saved"
)

// ContentEvent is published after paid content has been persisted
type ContentEvent struct {
	Type            ContentEventType `json:"type"`
	Action          ActionKind       `json:"action"`
	ID              string           `json:"id"`
	ThreadID        string           `json:"thread_id,omitempty"`
	Author          string           `json:"author"`
	TransactionHash string           `json:"transaction_hash"`
	Timestamp       int64            `json:"timestamp"`
}
