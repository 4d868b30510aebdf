package service

import "errors"

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrNotAdmin     = errors.New("admin access required")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyAPIKey  = errors.New("empty api key")

	ErrUnknownQuest    = errors.New("unknown quest")
	ErrQuestOnCooldown = errors.New("quest already claimed today")

	ErrUnknownPlan       = errors.New("unknown service plan")
	ErrAlreadyRedeemed   = errors.New("service already redeemed")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrMissingEmail      = errors.New("no email set in profile")
	ErrAccountNotFound   = errors.New("no panel account for email")

	ErrAllocationConflict = errors.New("port already assigned on node")
	ErrAllocationNotFound = errors.New("allocation not found after creation")

	ErrInvalidTheme = errors.New("invalid theme")

	ErrURLNotAllowed = errors.New("url not in allow-list")
)
