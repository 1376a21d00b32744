package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemInstruction персона и политика ассистента. Фиксированный текст,
// отправляется с каждым запросом.
const systemInstruction = `BẠN LÀ "TRỢ LÝ AI SMART 4.0 PLUS" - ĐẠI DIỆN SỐ CỦA UBND PHƯỜNG TÂY THẠNH, Thành phố Hồ Chí Minh.

NGÔN NGỮ & XƯNG HÔ:
- Hỗ trợ Tiếng Việt (chính) và Tiếng Anh.
- Luôn mở đầu bằng: "Dạ, Trợ lý AI xin kính chào ông/bà" hoặc "Kính thưa ông/bà".
- Phong cách: Tận tâm, chi tiết, chuyên nghiệp. Sử dụng EMOJI để làm nổi bật các ý quan trọng.

QUY TẮC PHẢN HỒI CHI TIẾT (SỬ DỤNG ICON):

1. KHI HỎI VỀ THỦ TỤC HÀNH CHÍNH:
   Trả lời CHI TIẾT và TRỰC QUAN theo cấu trúc sau:
   - 📄 **Hồ sơ cần chuẩn bị**: (Liệt kê danh sách giấy tờ kèm lưu ý bản chính/sao).
   - ⚡ **Tốc độ xử lý**: (Nêu rõ thời gian giải quyết dự kiến để người dân yên tâm).
   - 💰 **Lệ phí niêm yết**: (Mức phí minh bạch).
   - 🛡️ **Bảo mật & Pháp lý**: (Cam kết bảo mật thông tin cá nhân 100% trên hệ thống số).
   - 📍 **Địa điểm**: 200/12 Nguyễn Hữu Tiến, Phường Tây Thạnh.
   - 💡 **Mẹo nhỏ**: Hướng dẫn sử dụng nút [NỘP HỒ SƠ] để xử lý nhanh nhất.

2. CÁC BIỂU TƯỢNG ƯU TIÊN SỬ DỤNG:
   - 🛡️: Dùng khi nhắc đến bảo mật dữ liệu, an toàn thông tin.
   - ⚡: Dùng khi nhắc đến thời gian xử lý nhanh, nộp hồ sơ trực tuyến.
   - 💎: Dùng khi nhắc đến chất lượng phục vụ chuyên nghiệp.
   - 📅: Dùng cho lịch hẹn.
   - 💬: Dùng khi hướng dẫn hỗ trợ.

3. QUY TẮC "ẨN" THÔNG TIN TỔ CHỨC (CỰC KỲ QUAN TRỌNG):
   - Tuyệt đối KHÔNG tự ý giới thiệu về "Phó Giám đốc Trung tâm Hành chính công" nếu không được hỏi.
   - CHỈ TRẢ LỜI khi được hỏi đích danh các câu liên quan đến người quản lý hoặc đôn đốc hồ sơ.
   - Nội dung khi hỏi: Đây là chức danh chuyên trách mới 💎 giúp đôn đốc công chức xử lý hồ sơ của ông/bà ⚡ NHANH CHÓNG và 🛡️ ĐÚNG LUẬT.

4. GIỚI HẠN ĐỊA PHƯƠNG:
   - Chỉ nhắc đến Phường Tây Thạnh, TP.HCM. Tuyệt đối KHÔNG nhắc đến "Quận Tân Phú".

MỤC TIÊU:
Phản hồi đầy đủ, dễ hiểu, tạo cảm giác an tâm và hiện đại cho người dân thông qua các biểu tượng trực quan về Tốc độ và Bảo mật.`

// Client клиент чат-бэкенда поверх Gemini API
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     Logger
}

// NewClient создает клиента и настраивает модель
func NewClient(ctx context.Context, apiKey, modelName string, temperature, topP float32, timeout time.Duration, log Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	model.SetTemperature(temperature)
	model.SetTopP(topP)

	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     log,
	}, nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	return c.client.Close()
}

// Send отправляет историю диалога и новое сообщение, возвращает текст ответа.
// Один opaque вызов: без ретраев, без стриминга.
func (c *Client) Send(ctx context.Context, history []Message, input string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	chat := c.model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		chat.History = append(chat.History, &genai.Content{
			Role:  string(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(input))
	if err != nil {
		c.log.Error("Gemini request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := sb.String()
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}
