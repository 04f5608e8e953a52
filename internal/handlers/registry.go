package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	FriendshipHandler *FriendshipHandler
	MovieHandler      *MovieHandler
	PlaylistHandler   *PlaylistHandler
	BlendHandler      *BlendHandler
	HealthHandler     *HealthHandler
}
