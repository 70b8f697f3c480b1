package storage

// Store keys, kept byte-for-byte compatible with the persisted client state.
const (
	KeyPosts          = "socialnino-posts-v3"
	KeyProfile        = "socialnino-user-profile"
	KeyStories        = "socialnino-stories-v1"
	KeyPeople         = "socialnino-people-v1"
	KeyNotifications  = "socialnino-notifications-v1"
	KeyPoints         = "socialnino:ninoPoints"
	KeyDirectMessages = "socialnino_dms_store_v1"
	KeyChat           = "socialnino_chat_store_v1"
	KeyCredentials    = "socialnino-auth-v1"
)
