// Package hotload watches an input file and re-runs a hook once changes
// have settled.
package hotload

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/dcolor/pkg/utils/log"
)

// DefaultDebounce is used when a non-positive debounce is given.
const DefaultDebounce = 300 * time.Millisecond

// Func defines the type for the hot-reloading hook function.
type Func func()

// fileState stores whether the file exists and a hash of its content.
type fileState struct {
	exists bool
	size   int64
	hash   string
}

// readState 读取文件当前状态，文件不存在时 exists 为 false
func readState(path string) fileState {
	file, err := os.Open(path)
	if err != nil {
		return fileState{}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Error().Msgf("Failed to close file %s: %v", path, err)
		}
	}()

	hash := md5.New()
	n, err := io.Copy(hash, file)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: n, hash: fmt.Sprintf("%x", hash.Sum(nil))}
}

// WatchFile blocks until ctx is done, calling hook after every settled
// content change of path. The parent directory is watched so that editors
// which save by rename are handled too.
func WatchFile(ctx context.Context, path string, debounce time.Duration, hook Func) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("解析路径 '%s' 失败: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建 watcher 失败: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Msgf("关闭 watcher 失败: %v", cerr)
		}
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("将目录 '%s' 添加到 watcher 失败: %w", filepath.Dir(abs), err)
	}

	w := &watch{path: abs, debounce: debounce, state: readState(abs)}
	log.Info().Msgf("已开始监视 %s (debounce=%dms)，按 Ctrl+C 退出", abs, debounce/time.Millisecond)
	return w.run(ctx, watcher, hook)
}

// watch carries runtime state for the event loop.
type watch struct {
	path     string
	debounce time.Duration
	state    fileState
	timer    *time.Timer
}

func (w *watch) run(ctx context.Context, watcher *fsnotify.Watcher, hook Func) error {
	var fire <-chan time.Time
	defer func() {
		if w.timer != nil {
			w.timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debug().Msgf("EVENT! Op: %s, Name: %s", event.Op, event.Name)
			fire = w.armOrReset()
		case <-fire:
			fire = nil
			if w.changed() {
				hook()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Msgf("Watcher error: %s", err)
		}
	}
}

// relevant 只关心目标文件的写入、创建、删除与重命名
func (w *watch) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// armOrReset 启动或重置防抖定时器
func (w *watch) armOrReset() <-chan time.Time {
	if w.timer == nil {
		w.timer = time.NewTimer(w.debounce)
	} else {
		w.timer.Reset(w.debounce)
	}
	return w.timer.C
}

// changed 比较内容哈希，过滤掉没有实际内容变化的事件
func (w *watch) changed() bool {
	cur := readState(w.path)
	if cur == w.state {
		log.Debug().Msgf("File %s: no content change (hash unchanged)", w.path)
		return false
	}
	if !cur.exists {
		// 编辑器以重命名方式保存时文件会短暂消失，等待下一次事件
		log.Debug().Msgf("File %s: missing, waiting for content...", w.path)
		return false
	}
	w.state = cur
	log.Debug().Msgf("File %s: content changed (%d bytes)", w.path, cur.size)
	return true
}
