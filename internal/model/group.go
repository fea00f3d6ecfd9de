package model

// Group 帖子所属的主题分组，仅由管理命令创建
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"type:varchar(200);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
}

func (Group) TableName() string { return "groups" }

func (g Group) String() string { return g.Title }
