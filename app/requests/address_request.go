package requests

// MatchOptions tùy chọn cho một match request
type MatchOptions struct {
	UseCache *bool `json:"use_cache,omitempty"` // mặc định true
}

// Cached trả về use_cache với default true khi không gửi
func (o MatchOptions) Cached() bool {
	return o.UseCache == nil || *o.UseCache
}

// MatchAddressRequest request match một địa chỉ đơn lẻ
type MatchAddressRequest struct {
	Address string       `json:"address" binding:"required"`
	Options MatchOptions `json:"options,omitempty"`
}

// BatchMatchRequest request match hàng loạt địa chỉ (đồng bộ)
type BatchMatchRequest struct {
	Addresses []string     `json:"addresses" binding:"required,min=1,max=1000"`
	Options   MatchOptions `json:"options,omitempty"`
}
