package service

import (
	"strconv"
	"strings"
)

// FormSpec 表单校验配置：每个实体的必填字段在管道入口一次性校验
type FormSpec struct {
	Entity   string
	Required []string
}

// ValidationError 校验失败，携带全部无效字段名
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return e.Entity + ": missing required fields: " + strings.Join(e.Fields, ", ")
}

// Validate 检查必填字段非空，失败时报告所有缺失字段
func (fs FormSpec) Validate(values map[string]string) error {
	var missing []string
	for _, name := range fs.Required {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Entity: fs.Entity, Fields: missing}
	}
	return nil
}

// ParseNumber 数值字段转换，转换失败取0
func ParseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseAmount 非负数值字段转换，负值与转换失败都取0
func ParseAmount(raw string) float64 {
	v := ParseNumber(raw)
	if v < 0 {
		return 0
	}
	return v
}
