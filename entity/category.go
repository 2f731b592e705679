package entity

type Category struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Slug  string `gorm:"size:50" json:"slug"`
	Title string `gorm:"size:255;index" json:"title"`

	// Deleting a category that still has menu items is rejected, not cascaded.
	MenuItems []MenuItem `json:"-"`
}
