package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/golden"
	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/internal/matcher"
)

// batchWorkers số goroutines xử lý batch match
const batchWorkers = 8

// AddressService service nghiệp vụ bọc quanh AddressMatcher
type AddressService struct {
	matcher   *matcher.AddressMatcher
	index     *golden.Index
	logger    *zap.Logger
	startTime time.Time
}

// NewAddressService tạo mới AddressService
func NewAddressService(m *matcher.AddressMatcher, index *golden.Index, logger *zap.Logger) *AddressService {
	return &AddressService{
		matcher:   m,
		index:     index,
		logger:    logger,
		startTime: time.Now(),
	}
}

// MatchAddress resolve một địa chỉ đơn lẻ
func (s *AddressService) MatchAddress(input string) *models.MatchResult {
	result := s.matcher.Match(input)
	return &result
}

// MatchBatch resolve nhiều địa chỉ, giữ nguyên thứ tự input.
// Matching is pure against the immutable index, so the fan-out needs no
// coordination beyond slot-per-input writes.
func (s *AddressService) MatchBatch(inputs []string) []*models.MatchResult {
	results := make([]*models.MatchResult, len(inputs))

	workers := batchWorkers
	if workers > len(inputs) {
		workers = len(inputs)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.MatchAddress(inputs[i])
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	s.logger.Debug("batch match completed", zap.Int("addresses", len(inputs)))
	return results
}

// IndexSize số lượng entries trong golden index
func (s *AddressService) IndexSize() int { return s.index.Len() }

// GetStartTime thời điểm service khởi động
func (s *AddressService) GetStartTime() time.Time { return s.startTime }
