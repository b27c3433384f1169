package dto

// swagger:model
type CouponUseResponse struct {
	Code        string `json:"codigo"`
	Used        bool   `json:"utilizado"`
	UsedAt      string `json:"dataUtilizacao"`
	AdvantageID int64  `json:"vantagemId"`
}
