package deepseek

// Model identifiers accepted by the API.
const (
	ModelChat     = "deepseek-chat"
	ModelReasoner = "deepseek-reasoner"

	// ModelCoder was merged into deepseek-chat; the API still accepts the name.
	ModelCoder = "deepseek-coder"
)

// ModelInfo describes one model returned by the models endpoint.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	OwnedBy string `json:"owned_by"`
}

// modelsResponse is the body of the models endpoint.
type modelsResponse struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}

// BalanceInfo is the body of the user balance endpoint.
type BalanceInfo struct {
	IsAvailable  bool              `json:"is_available"`
	BalanceInfos []CurrencyBalance `json:"balance_infos"`
}

// CurrencyBalance is the balance of one currency. Amounts are decimal strings
// as returned by the API.
type CurrencyBalance struct {
	Currency        string `json:"currency"`
	TotalBalance    string `json:"total_balance"`
	GrantedBalance  string `json:"granted_balance"`
	ToppedUpBalance string `json:"topped_up_balance"`
}
