// Package upload 模拟文件上传
// 没有真实传输：按固定节拍产生随机增长的进度，用于驱动附件状态机和前端进度条。
package upload

import (
	"math/rand"
	"path"
	"time"

	"github.com/bitfantasy/orgdesk/internal/model/entity"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTick 进度节拍间隔
	DefaultTick = 200 * time.Millisecond
	// DefaultSettle 进度到100后的收尾延迟
	DefaultSettle = 300 * time.Millisecond

	// maxStep 单次节拍的最大进度增量（百分点）
	maxStep = 20.0
)

// Simulator 上传模拟器
type Simulator struct {
	tick   time.Duration
	settle time.Duration
}

// NewSimulator 创建上传模拟器，非正数参数取默认值
func NewSimulator(tick, settle time.Duration) *Simulator {
	if tick <= 0 {
		tick = DefaultTick
	}
	if settle < 0 {
		settle = DefaultSettle
	}
	return &Simulator{tick: tick, settle: settle}
}

// Upload 阻塞执行一次模拟上传
// 先回调0，之后每个节拍增加[0,20)个百分点；达到100时回调恰好100，
// 等待收尾延迟后返回。进度只增不减，且一定以100结束，永不失败。
func (s *Simulator) Upload(onProgress func(progress float64)) {
	if onProgress != nil {
		onProgress(0)
	}

	progress := 0.0
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		<-ticker.C
		progress += rand.Float64() * maxStep
		if progress >= 100 {
			if onProgress != nil {
				onProgress(100)
			}
			time.Sleep(s.settle)
			return
		}
		if onProgress != nil {
			onProgress(progress)
		}
	}
}

// ProgressFunc 附件级进度通知，每次进度变化调用一次
type ProgressFunc func(att *entity.Attachment)

// UploadAll 并发上传所有处于已选择状态的附件
// 每个附件独立推进进度；全部上传完成（含收尾延迟）后才返回，
// 调用方在返回之前不得提交记录。
func UploadAll(sim *Simulator, dir string, atts []*entity.Attachment, notify ProgressFunc) {
	g := new(errgroup.Group)

	for _, att := range atts {
		if att == nil || att.State() != entity.AttachmentSelected {
			continue
		}

		att := att
		att.BeginUpload()
		g.Go(func() error {
			sim.Upload(func(p float64) {
				att.SetProgress(p)
				if notify != nil {
					notify(att)
				}
			})
			att.CompleteUpload(path.Join(dir, att.Name))
			if notify != nil {
				notify(att)
			}
			return nil
		})
	}

	// 模拟上传不会失败，等待即汇合
	g.Wait()
}
