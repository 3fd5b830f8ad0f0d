package history

import "contactcenter/internal/common"

// 受管主体类型（封闭集合，新增类型必须在此注册）
const (
	SubjectEntity      = "entity"
	SubjectContact     = "contact"
	SubjectManagement  = "management"
	SubjectSpecialCase = "special_case"
)

// ErrUnknownSubjectType 主体类型未注册
var ErrUnknownSubjectType = common.NewBusinessError(common.CodeInvalidRequest, "未知的主体类型")

var subjectRegistry = map[string]struct{}{
	SubjectEntity:      {},
	SubjectContact:     {},
	SubjectManagement:  {},
	SubjectSpecialCase: {},
}

// IsValidSubjectType 检查主体类型是否已注册
func IsValidSubjectType(subjectType string) bool {
	_, ok := subjectRegistry[subjectType]
	return ok
}

// SubjectTypes 返回全部已注册的主体类型
func SubjectTypes() []string {
	return []string{SubjectEntity, SubjectContact, SubjectManagement, SubjectSpecialCase}
}
