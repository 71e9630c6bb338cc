package userservice

// Статусы аккаунта. Активный аккаунт хранится с NULL статусом,
// поэтому поле - указатель.
const (
	StatusInactive = "inactive"
	StatusBanned   = "banned"
)

// User модель диджея из каталога пользователей
type User struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Status   *string `json:"status"` // nil = active
}

// IsBanned возвращает true для забаненного аккаунта
func (u *User) IsBanned() bool {
	return u.Status != nil && *u.Status == StatusBanned
}

// IsInactive возвращает true для деактивированного аккаунта
func (u *User) IsInactive() bool {
	return u.Status != nil && *u.Status == StatusInactive
}

// CanBook возвращает true, если аккаунту разрешено бронировать слоты
func (u *User) CanBook() bool {
	return !u.IsBanned() && !u.IsInactive()
}

// ErrorResponse модель ошибки от каталога пользователей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
