package constant

const (
	// DeviceActivityTable is the tabular source holding device activity rows.
	DeviceActivityTable = "device_activity_logs"

	// ThinkEndTag closes the reasoning segment some models emit before
	// the real answer. Everything up to and including this tag is dropped.
	ThinkEndTag = "</think>"

	// RelayCompletedTopic is the in-process topic the chat service
	// publishes to after a relay finishes (successfully or not).
	RelayCompletedTopic = "CHAT_RELAY_COMPLETED"

	// PersonaPreamble opens every prompt sent to the model.
	PersonaPreamble = "You are a friendly and responsive customer service assistant for network services and device monitoring."

	// AnswerInstructions close the prompt. The model is told explicitly to
	// keep reasoning tags out of the answer; the stream filter is the
	// backstop for models that emit them anyway.
	AnswerInstructions = "Give a friendly, informative and concise answer based on the context provided. " +
		"If the device context does not contain enough information, say that you have no specific data or need more details. " +
		"If the question is unrelated to devices, explain that you can only provide device status information.\n" +
		"Important: your response must contain only the final answer, without internal reasoning, debug notes, or tags such as <think>."

	PromptSeparator = "---"
	AnswerCue       = "Answer:"
)
