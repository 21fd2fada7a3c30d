package dto

import "encoding/json"

// FundRequest is the payload for adding money to the caller's wallet.
// The amount is bound as json.Number so both "10.50" and 10.50 are
// accepted without losing precision to float conversion.
type FundRequest struct {
	Amt json.Number `json:"amt" binding:"required"`
}

// PayRequest is the payload for sending money to another user.
type PayRequest struct {
	To  string      `json:"to" binding:"required"`
	Amt json.Number `json:"amt" binding:"required"`
}

// BalanceResponse reports the caller's balance, optionally converted
// to another currency.
type BalanceResponse struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// TransactionResponse is a single statement entry.
type TransactionResponse struct {
	Kind        string `json:"kind"`
	Amt         string `json:"amt"`
	UpdatedBal  string `json:"updated_bal"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// FundResponse confirms a funding operation with the resulting balance.
type FundResponse struct {
	Balance string `json:"balance"`
}

// PayResponse confirms a payment with the payer's resulting balance.
type PayResponse struct {
	Message string `json:"message"`
	Balance string `json:"balance"`
}
