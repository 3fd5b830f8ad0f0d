package common

import "gorm.io/gorm"

// Active 仅查询启用状态的记录
// 使用方法：db.Scopes(common.Active()).Find(&entities)
func Active() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	}
}

// Inactive 仅查询停用状态的记录
// 使用方法：db.Scopes(common.Inactive()).Find(&entities)
func Inactive() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", false)
	}
}

// ByCreationOrder 按创建时间升序排列，时间相同时按ID升序
// 使用方法：db.Scopes(common.ByCreationOrder()).Find(&records)
func ByCreationOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	}
}

// ByCreationOrderDesc 按创建时间降序排列
func ByCreationOrderDesc() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}
}
