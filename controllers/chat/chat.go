package chat

import (
	"os"

	"adwhey-portal/logger"
	chatService "adwhey-portal/services/chat"
	"adwhey-portal/types"
	chatTypes "adwhey-portal/types/chat"

	"github.com/gofiber/fiber/v2"
)

type ChatController struct{}

func NewChatController() *ChatController {
	return &ChatController{}
}

// Reply answers a visitor message. The keyword table is tried first;
// when nothing matches and a Gemini key is configured, the model is
// asked, with the canned fallback covering every failure mode.
func (cc *ChatController) Reply(c *fiber.Ctx) error {
	var req chatTypes.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	reply := chatService.Reply(req.Message)
	matched := chatService.Matched(req.Message)

	if !matched && os.Getenv("GEMINI_API_KEY") != "" {
		assisted, err := chatService.AssistReply(c.Context(), req.Message)
		if err != nil {
			logger.Warning("Chat assist failed, using fallback: " + err.Error())
		} else if assisted != "" {
			reply = assisted
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reply generated",
		Data: chatTypes.ReplyResponse{
			Reply:   reply,
			Matched: matched,
		},
	})
}
