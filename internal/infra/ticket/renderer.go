package ticket

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/smart-taythanh/STT-CitizenService/internal/domain"
)

// Фиксированная геометрия портретного макета билета
const (
	ticketWidth  = 1000
	ticketHeight = 1400

	cardX      = 60
	cardY      = 180
	cardWidth  = 880
	cardHeight = 1050
	cardRadius = 50

	leftMargin  = 110
	rightMargin = 890

	// Ширина колонки услуги: длинные названия переносятся вручную
	serviceColumnWidth = 480
	serviceLineHeight  = 45
)

const (
	headerLine   = "TRUNG  TÂM  PHỤC  VỤ  HÀNH  CHÍNH  CÔNG  PHƯỜNG  TÂY  THẠNH"
	ticketTitle  = "PHIẾU ĐẶT LỊCH HẸN"
	ticketHint   = "VUI LÒNG XUẤT TRÌNH PHIẾU NÀY KHI ĐẾN LÀM VIỆC"
	footerLine   = "BY SMART AI 4.0 - TRUNG TÂM PHỤC VỤ HÀNH CHÍNH CÔNG PHƯỜNG TÂY THẠNH"
	fallbackName = "Khách hàng"
	fallbackCCCD = "000000000000"
)

// Renderer renders a completed booking record into a fixed-layout PNG
// ticket. Pure transformation, no network, no persisted state.
type Renderer struct {
	font *truetype.Font
}

// NewRenderer создает рендерер с встроенным шрифтом
func NewRenderer() (*Renderer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("ticket: failed to parse font: %w", err)
	}
	return &Renderer{font: f}, nil
}

// Render рисует билет и возвращает PNG
func (r *Renderer) Render(record *domain.BookingRecord) ([]byte, error) {
	dc := gg.NewContext(ticketWidth, ticketHeight)

	r.drawBackground(dc)
	r.drawHeader(dc)
	r.drawCard(dc)

	name := strings.ToUpper(strings.TrimSpace(record.Name))
	if name == "" {
		name = strings.ToUpper(fallbackName)
	}
	cccd := record.CCCD
	if cccd == "" {
		cccd = fallbackCCCD
	}

	r.drawSection(dc, "HỌ TÊN NGƯỜI ĐĂNG KÝ", name, 430, colorWhite, 42)
	r.drawSection(dc, "SỐ CĂN CƯỚC CÔNG DÂN", cccd, 540, colorWhite, 38)
	r.drawSection(dc, "MÃ SỐ ĐỊNH DANH LỊCH HẸN", record.Code, 660, colorCodeYellow, 56)

	// Разделительная линия под основными полями
	dc.SetColor(color.NRGBA{250, 204, 21, 26})
	dc.SetLineWidth(1.5)
	dc.DrawLine(leftMargin, 730, rightMargin, 730)
	dc.Stroke()

	serviceBottom := r.drawServiceBlock(dc, record.Service)
	r.drawCounterBlock(dc, domain.CounterForService(record.Service))

	infoY := serviceBottom + 100
	if infoY < 1000 {
		infoY = 1000
	}
	r.drawSection(dc, "KHUNG GIỜ ĐẾN LÀM VIỆC", record.TimeSlot, infoY, colorWhite, 44)
	r.drawDateBlock(dc, record.DateLabel, infoY)

	r.drawText(dc, footerLine, ticketWidth/2, 1340, 14, color.NRGBA{254, 240, 138, 64}, alignCenter)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("ticket: failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName имя файла билета, содержит код записи
func FileName(code string) string {
	return fmt.Sprintf("PhieuHen_TayThanh_%s.png", code)
}

var (
	colorWhite      = color.NRGBA{255, 255, 255, 255}
	colorCodeYellow = color.NRGBA{253, 224, 71, 255}
	colorYellow     = color.NRGBA{250, 204, 21, 255}
	colorLabel      = color.NRGBA{254, 240, 138, 115}
)

type textAlign int

const (
	alignLeft textAlign = iota
	alignCenter
	alignRight
)

func (r *Renderer) face(size float64) font.Face {
	return truetype.NewFace(r.font, &truetype.Options{Size: size})
}

func (r *Renderer) drawText(dc *gg.Context, text string, x, y float64, size float64, c color.Color, align textAlign) {
	dc.SetFontFace(r.face(size))
	dc.SetColor(c)

	w, _ := dc.MeasureString(text)
	switch align {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}
	dc.DrawString(text, x, y)
}

func (r *Renderer) drawBackground(dc *gg.Context) {
	grad := gg.NewLinearGradient(0, 0, 0, ticketHeight)
	grad.AddColorStop(0, color.NRGBA{0x7f, 0x1d, 0x1d, 255})
	grad.AddColorStop(1, color.NRGBA{0x45, 0x0a, 0x0a, 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, ticketWidth, ticketHeight)
	dc.Fill()

	// Диагональная штриховка фона
	dc.SetColor(color.NRGBA{250, 204, 21, 8})
	dc.SetLineWidth(1)
	for i := 0; i < 40; i++ {
		dc.DrawLine(0, float64(i*60), ticketWidth, float64(i*60+150))
		dc.Stroke()
	}

	// Желтая полоса сверху
	dc.SetColor(colorYellow)
	dc.DrawRectangle(0, 0, ticketWidth, 15)
	dc.Fill()
}

func (r *Renderer) drawHeader(dc *gg.Context) {
	r.drawText(dc, headerLine, 60, 70, 28, color.NRGBA{254, 240, 138, 255}, alignLeft)
}

func (r *Renderer) drawCard(dc *gg.Context) {
	dc.SetColor(color.NRGBA{0, 0, 0, 51})
	dc.DrawRoundedRectangle(cardX, cardY, cardWidth, cardHeight, cardRadius)
	dc.Fill()

	dc.SetColor(color.NRGBA{250, 204, 21, 20})
	dc.DrawRoundedRectangle(cardX, cardY, cardWidth, cardHeight, cardRadius)
	dc.Stroke()

	r.drawText(dc, ticketTitle, ticketWidth/2, 310, 60, colorYellow, alignCenter)
	r.drawText(dc, ticketHint, ticketWidth/2, 355, 16, color.NRGBA{254, 240, 138, 90}, alignCenter)
}

func (r *Renderer) drawSection(dc *gg.Context, label, value string, y float64, c color.Color, size float64) {
	r.drawText(dc, label, leftMargin, y, 18, colorLabel, alignLeft)
	r.drawText(dc, value, leftMargin, y+60, size, c, alignLeft)
}

// drawServiceBlock рисует название услуги с ручным переносом строк в пределах
// фиксированной ширины колонки. Возвращает Y последней строки.
func (r *Renderer) drawServiceBlock(dc *gg.Context, service string) float64 {
	r.drawText(dc, "LĨNH VỰC TIẾP NHẬN", leftMargin, 790, 22, colorLabel, alignLeft)

	dc.SetFontFace(r.face(32))
	dc.SetColor(colorWhite)

	words := strings.Fields(service)
	line := ""
	y := 850.0

	for i, word := range words {
		testLine := line + word + " "
		if w, _ := dc.MeasureString(testLine); w > serviceColumnWidth && i > 0 {
			dc.DrawString(strings.TrimRight(line, " "), leftMargin, y)
			line = word + " "
			y += serviceLineHeight
		} else {
			line = testLine
		}
	}
	dc.DrawString(strings.TrimRight(line, " "), leftMargin, y)

	return y
}

func (r *Renderer) drawCounterBlock(dc *gg.Context, counter string) {
	r.drawText(dc, "VỊ TRÍ TIẾP NHẬN", rightMargin, 790, 22, colorLabel, alignRight)
	r.drawText(dc, fmt.Sprintf("QUẦY SỐ %s", counter), rightMargin, 860, 40, colorYellow, alignRight)
}

func (r *Renderer) drawDateBlock(dc *gg.Context, dateLabel string, y float64) {
	r.drawText(dc, "NGÀY HẸN", rightMargin, y, 18, colorLabel, alignRight)
	r.drawText(dc, dateLabel, rightMargin, y+60, 44, colorWhite, alignRight)
}
