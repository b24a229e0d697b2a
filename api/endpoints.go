package api

const (
	RESOURCE_SEND_MESSAGE = "send-message"

	ENDPOINT_SEND_MESSAGE = "/" + RESOURCE_SEND_MESSAGE
)

/*
POST /send-message

- relays the conversation to the text-completion model, or to the
  image-generation model when the request type is "image"
- generated images are copied into the storage bucket and handed back
  to the client as a signed url
- the updated conversation is written to users/{userId}/conversations/{id}
  once the response has been sent
*/
