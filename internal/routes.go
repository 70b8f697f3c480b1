package internal

import (
	"net/http"
	"socialnino/internal/controllers"
	"socialnino/internal/providers"
)

func InitRoutes(
	feed *controllers.FeedController,
	posts *controllers.PostsController,
	messages *controllers.MessagesController,
	ranking *controllers.RankingController,
	points *controllers.PointsController,
	profile *controllers.ProfileController,
	auth *controllers.AuthController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/feed", http.HandlerFunc(feed.GetFeed))
	routers.Get("/timeline", http.HandlerFunc(feed.GetTimeline))

	routers.Post("/posts", http.HandlerFunc(posts.CreatePost))
	routers.Post("/posts/like", http.HandlerFunc(posts.ToggleLike))
	routers.Post("/posts/bookmark", http.HandlerFunc(posts.ToggleBookmark))
	routers.Post("/posts/comment", http.HandlerFunc(posts.AddComment))
	routers.Post("/people/follow", http.HandlerFunc(posts.ToggleFollow))

	routers.Get("/conversations", http.HandlerFunc(messages.GetConversations))
	routers.Get("/thread", http.HandlerFunc(messages.GetThread))
	routers.Post("/thread/send", http.HandlerFunc(messages.SendMessage))
	routers.Post("/thread/read", http.HandlerFunc(messages.MarkThreadRead))
	routers.Get("/chat", http.HandlerFunc(messages.GetChat))
	routers.Post("/chat/send", http.HandlerFunc(messages.SendChat))
	routers.Post("/chat/react", http.HandlerFunc(messages.React))

	routers.Get("/ranking", http.HandlerFunc(ranking.GetRanking))
	routers.Post("/ranking/submit", http.HandlerFunc(ranking.SubmitScore))

	routers.Get("/points", http.HandlerFunc(points.GetPoints))
	routers.Post("/points/reset", http.HandlerFunc(points.ResetPoints))

	routers.Get("/profile", http.HandlerFunc(profile.GetProfile))
	routers.Post("/profile/update", http.HandlerFunc(profile.UpdateProfile))
	routers.Get("/stories", http.HandlerFunc(profile.GetStories))
	routers.Post("/stories/create", http.HandlerFunc(profile.CreateStory))
	routers.Get("/notifications", http.HandlerFunc(profile.GetNotifications))
	routers.Post("/notifications/read", http.HandlerFunc(profile.MarkNotificationRead))

	routers.Post("/register", http.HandlerFunc(auth.Register))
	routers.Post("/login", http.HandlerFunc(auth.Login))

	return routers
}
