package model

import "time"

// Post 内容主体
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"pub_date" gorm:"index:idx_post_created"`
	AuthorID  uint      `json:"author_id" gorm:"index:idx_post_author;not null"`
	Author    User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID   *uint     `json:"group_id,omitempty" gorm:"index:idx_post_group"`
	Group     *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	Image     string    `json:"image,omitempty" gorm:"type:varchar(255)"` // 相对 media 根目录的路径
}

func (Post) TableName() string { return "posts" }

// String 返回正文前 15 个字符
func (p Post) String() string {
	r := []rune(p.Text)
	if len(r) > 15 {
		r = r[:15]
	}
	return string(r)
}
