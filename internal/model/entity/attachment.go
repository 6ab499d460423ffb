package entity

import (
	"errors"
)

// AttachmentState 附件状态
type AttachmentState int

const (
	AttachmentEmpty     AttachmentState = iota // 未选择文件
	AttachmentSelected                         // 已选择文件，尚未提交
	AttachmentUploading                        // 上传中
	AttachmentUploaded                         // 上传完成（终态）
)

// PhotoSlotID 单附件槽位（员工照片）的固定ID
const PhotoSlotID = "photo"

// ErrAttachmentLocked 附件已进入上传或已完成，不允许替换文件
var ErrAttachmentLocked = errors.New("attachment is uploading or already uploaded")

// Payload 待上传文件句柄，内容与大小对模拟上传无意义
type Payload struct {
	Name string
	Size int64
}

// Attachment 记录附件
// 持久化形态只包含 id/name/url/progress/isUploading/isUploaded，
// payload 不导出，序列化时永远不会落盘
type Attachment struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	URL         string  `json:"url,omitempty"`
	Progress    float64 `json:"progress,omitempty"`
	IsUploading bool    `json:"isUploading,omitempty"`
	IsUploaded  bool    `json:"isUploaded,omitempty"`

	payload *Payload
}

// NewAttachment 创建空附件槽位
func NewAttachment(id string) *Attachment {
	return &Attachment{ID: id}
}

// State 当前状态
func (a *Attachment) State() AttachmentState {
	switch {
	case a.IsUploaded:
		return AttachmentUploaded
	case a.IsUploading:
		return AttachmentUploading
	case a.payload != nil:
		return AttachmentSelected
	default:
		return AttachmentEmpty
	}
}

// Select 选择（或替换）待上传文件，名称取自文件描述
// 上传中或已上传的附件不允许替换
func (a *Attachment) Select(p *Payload) error {
	if a.IsUploading || a.IsUploaded {
		return ErrAttachmentLocked
	}
	a.payload = p
	a.Name = p.Name
	a.IsUploaded = false
	a.Progress = 0
	return nil
}

// Payload 当前待上传文件，上传完成后为nil
func (a *Attachment) Payload() *Payload {
	return a.payload
}

// BeginUpload 进入上传状态
func (a *Attachment) BeginUpload() {
	a.IsUploading = true
}

// SetProgress 更新上传进度，只增不减
func (a *Attachment) SetProgress(p float64) {
	if p > a.Progress {
		a.Progress = p
	}
}

// CompleteUpload 上传完成：清除文件句柄，记录最终地址
func (a *Attachment) CompleteUpload(url string) {
	a.IsUploading = false
	a.IsUploaded = true
	a.Progress = 100
	if url != "" {
		a.URL = url
	}
	a.payload = nil
}

// Finalized 生成可持久化副本，文件句柄一定被剥离
func (a *Attachment) Finalized() Attachment {
	c := *a
	c.payload = nil
	return c
}

// FinalizeAttachments 过滤掉空槽位并剥离文件句柄，用于记录提交
func FinalizeAttachments(atts []*Attachment) []Attachment {
	out := make([]Attachment, 0, len(atts))
	for _, a := range atts {
		if a == nil || a.Name == "" {
			continue
		}
		out = append(out, a.Finalized())
	}
	return out
}
