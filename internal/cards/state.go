package cards

import "sync"

// cardState 单张卡片的本地视图状态
type cardState struct {
	previewIndex int  // 当前预览的图片下标，-1 表示预览关闭
	deleting     bool // 删除在途标志，每张卡片同时最多一个删除
}

// StateManager 按卡片 id 跟踪视图状态
// 不同卡片的删除互不阻塞，同一张卡片的删除串行
type StateManager struct {
	mu     sync.Mutex
	states map[string]*cardState
}

func NewStateManager() *StateManager {
	return &StateManager{states: make(map[string]*cardState)}
}

func (m *StateManager) state(cardID string) *cardState {
	s, ok := m.states[cardID]
	if !ok {
		s = &cardState{previewIndex: -1}
		m.states[cardID] = s
	}
	return s
}

// TryBeginDelete 尝试占用该卡片的删除名额
// 已有删除在途时返回 false，调用方应拒绝本次请求
func (m *StateManager) TryBeginDelete(cardID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(cardID)
	if s.deleting {
		return false
	}
	s.deleting = true
	return true
}

// EndDelete 释放删除名额（成功失败都要调用）
func (m *StateManager) EndDelete(cardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(cardID).deleting = false
}

// IsDeleting 该卡片是否有删除在途
func (m *StateManager) IsDeleting(cardID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state(cardID).deleting
}

// OpenPreview 打开预览并记录下标
func (m *StateManager) OpenPreview(cardID string, index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(cardID).previewIndex = index
}

// ClosePreview 关闭预览
func (m *StateManager) ClosePreview(cardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(cardID).previewIndex = -1
}

// PreviewIndex 当前预览下标，第二个返回值表示预览是否打开
func (m *StateManager) PreviewIndex(cardID string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := m.state(cardID).previewIndex
	return idx, idx >= 0
}

// OnImageRemoved 图片删除后的预览状态修正：
// 删掉的正是预览中的图片时关闭预览，删掉前面的图片时下标左移
func (m *StateManager) OnImageRemoved(cardID string, removedIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state(cardID)
	switch {
	case s.previewIndex < 0:
	case s.previewIndex == removedIndex:
		s.previewIndex = -1
	case s.previewIndex > removedIndex:
		s.previewIndex--
	}
}
