package models

// Friendship - связь между двумя пользователями.
// RequesterID отправил запрос, AddresseeID его принимает или отклоняет.
type Friendship struct {
	BaseModel
	RequesterID string           `gorm:"not null;index;uniqueIndex:idx_friend_pair"`
	AddresseeID string           `gorm:"not null;index;uniqueIndex:idx_friend_pair"`
	Status      FriendshipStatus `gorm:"type:varchar(20);default:'pending'"`

	// Relations
	Requester *User `gorm:"foreignKey:RequesterID"`
	Addressee *User `gorm:"foreignKey:AddresseeID"`
}
