package chatfx

import (
	"go.uber.org/fx"

	"trekzaa/internal/api/controllers"
	"trekzaa/internal/services"
	mem "trekzaa/pkg/memcache"
	"trekzaa/pkg/utils"
)

var Module = fx.Provide(
	provideChatHistory, provideChatService, provideChatController)

func provideChatHistory() mem.ChatHistoryStore {
	return mem.NewChatHistory(0)
}

func provideChatService(history mem.ChatHistoryStore, completion utils.CompletionClientInterface) services.ChatServiceInterface {
	return services.NewChatService(history, completion)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
