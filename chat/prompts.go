package chat

import (
	"fmt"
	"strings"

	"museumguide-backend/catalog"
)

// SystemPrompt frames the assistant for museum visitors.
const SystemPrompt = `You are the virtual assistant of the Global Museum of Art and Science.
Answer visitor questions about exhibits, tickets, tours, opening hours and facilities.
Use only the museum context provided below. If the answer is not in the context, say you are not sure and suggest contacting the museum directly.

Museum context:
%s`

// BuildMessages assembles the conversation sent to the model: a system turn
// grounded in catalog snippets relevant to the question, any prior history,
// and the user's message.
func BuildMessages(userInput string, history []Message) []Message {
	docs := catalog.Search(userInput, 2)
	snippets := make([]string, 0, len(docs))
	for _, doc := range docs {
		snippets = append(snippets, doc.Text)
	}
	context := strings.Join(snippets, "\n")

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: fmt.Sprintf(SystemPrompt, context)})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userInput})
	return messages
}
