package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateModelRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Description string   `json:"description"`
	PhotoURL    string   `json:"photo_url"`
	Ethnicity   string   `json:"ethnicity"`
	HairColor   string   `json:"hair_color"`
	EyeColor    string   `json:"eye_color"`
	BodyType    string   `json:"body_type"`
	Age         *int     `json:"age" binding:"omitempty,gte=18,lte=99"`
	Tags        []string `json:"tags"`
}

// UpdateModelRequest is a partial patch: nil fields are left untouched.
// ID, slug, views and timestamps are never client-writable.
type UpdateModelRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	PhotoURL    *string   `json:"photo_url"`
	Ethnicity   *string   `json:"ethnicity"`
	HairColor   *string   `json:"hair_color"`
	EyeColor    *string   `json:"eye_color"`
	BodyType    *string   `json:"body_type"`
	Age         *int      `json:"age" binding:"omitempty,gte=18,lte=99"`
	Tags        *[]string `json:"tags"`
}

type CreateCommentRequest struct {
	ModelID   *uint  `json:"model_id"`
	ContentID *uint  `json:"content_id"`
	Text      string `json:"text" binding:"required,min=1,max=2000"`
}

type ToggleLikeRequest struct {
	ModelID   *uint    `json:"model_id"`
	ContentID *uint    `json:"content_id"`
	Type      LikeType `json:"type" binding:"required,oneof=model content"`
}

type ConfirmAgeRequest struct {
	Confirmed bool   `json:"confirmed"`
	BirthDate string `json:"birth_date"`
}

type ModelListResponse struct {
	Models     []Model    `json:"models"`
	Pagination Pagination `json:"pagination"`
}

type CommentListResponse struct {
	Comments   []Comment  `json:"comments"`
	Pagination Pagination `json:"pagination"`
}

type HistoryListResponse struct {
	History    []UserHistory `json:"history"`
	Pagination Pagination    `json:"pagination"`
}
