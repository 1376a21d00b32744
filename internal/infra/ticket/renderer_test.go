package ticket

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
	"github.com/smart-taythanh/STT-CitizenService/pkg/types"
)

func testRecord(service string) *domain.BookingRecord {
	return &domain.BookingRecord{
		Code:      "TT-1605-0800-42",
		Service:   service,
		Counter:   "07",
		Date:      time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC),
		DateLabel: "16/05/2025",
		TimeSlot:  "08:00 - 08:30",
		StartTime: types.TimeString("08:00"),
		Name:      "Nguyễn Văn An",
		CCCD:      "079123456789",
		CreatedAt: time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	data, err := renderer.Render(testRecord("Chứng thực bản sao/chữ ký"))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a valid PNG")

	bounds := img.Bounds()
	assert.Equal(t, 1000, bounds.Dx())
	assert.Equal(t, 1400, bounds.Dy())
}

func TestRenderLongServiceName(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	// Длинное название переносится по словам, без паники и обрезки холста
	long := "Thủ tục hành chính tổng hợp về đất đai, xây dựng, quy hoạch đô thị và các vấn đề liên quan khác"
	data, err := renderer.Render(testRecord(long))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 1400, img.Bounds().Dy())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "PhieuHen_TayThanh_TT-1605-0800-42.png", FileName("TT-1605-0800-42"))
}
