package dict

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"godis-dict/config"
	"godis-dict/lib/algorithms"
	"godis-dict/lib/logger"
)

const (
	DefaultCapacity = 1024
	MaxCapacity     = 1 << 30

	defaultLoadFactor = 0.60
)

// HashTable 是使用 Robin Hood 位移策略的开放寻址哈希表，除 Compress 之后外容量总是素数
type HashTable struct {
	table           []*Pair
	size            int
	maxDisplacement int

	initialCapacity   int
	loadFactor        float64
	growthRate        float64
	initialGrowthRate float64
	baseGrowthRate    float64
	growthRateFloor   float64
	growthRateStep    float64

	collisions  int
	probeCount  int
	rehashCount int
}

// NewHashTable 按 config.Properties 确定大小：小于 MinCapacity 时取 MinCapacity，
// capacity <= 0 时使用配置的默认容量
func NewHashTable(capacity int) *HashTable {
	return newHashTable(capacity, config.Properties)
}

func newHashTable(capacity int, p *config.DictProperties) *HashTable {
	if p == nil {
		p = config.Default()
	}
	if capacity <= 0 {
		capacity = p.InitialCapacity
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity < p.MinCapacity {
		capacity = p.MinCapacity
	}
	if capacity > MaxCapacity {
		logger.Warnf("hash table capacity %d exceeds limit, using %d", capacity, MaxCapacity)
		capacity = MaxCapacity
	}
	lf := p.LoadFactor
	if lf <= 0 {
		lf = defaultLoadFactor
	}
	if lf > 1 {
		lf = 1
	}
	base := positiveOr(p.GrowthRate, 2)
	rate := base
	if capacity < p.SmallTableLimit {
		rate = positiveOr(p.SmallGrowthRate, base)
	}
	h := &HashTable{
		initialCapacity:   algorithms.FindPrime(capacity),
		loadFactor:        lf,
		initialGrowthRate: rate,
		baseGrowthRate:    base,
		growthRateFloor:   positiveOr(p.GrowthRateFloor, 1.75),
		growthRateStep:    positiveOr(p.GrowthRateStep, 0.05),
	}
	h.reset()
	return h
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func (h *HashTable) reset() {
	h.table = make([]*Pair, h.initialCapacity)
	h.size = 0
	h.maxDisplacement = 0
	h.growthRate = h.initialGrowthRate
	h.collisions = 0
	h.probeCount = 0
	h.rehashCount = 0
}

func (h *HashTable) Type() Type {
	return HASHTABLE
}

func (h *HashTable) Size() int {
	if h == nil {
		panic("Nil HashTable")
	}
	return h.size
}

func (h *HashTable) Capacity() int {
	return len(h.table)
}

func (h *HashTable) MaxDisplacement() int {
	return h.maxDisplacement
}

func (h *HashTable) load() float64 {
	return float64(h.size) / float64(len(h.table))
}

func indexFor(key Key, capacity int) int {
	return int(uint32(key.HashCode())&0x7fffffff) % capacity
}

// displacement 计算 slot 距离 key 理想位置的距离（按容量取模）
func (h *HashTable) displacement(key Key, slot int) int {
	ideal := indexFor(key, len(h.table))
	if slot >= ideal {
		return slot - ideal
	}
	return len(h.table) + slot - ideal
}

// lookup 返回 key 所在的槽位，不存在时返回 -1
func (h *HashTable) lookup(key Key) int {
	capacity := len(h.table)
	bound := h.maxDisplacement
	if bound > capacity-1 {
		bound = capacity - 1
	}
	start := indexFor(key, capacity)
	for d := 0; d <= bound; d++ {
		slot := (start + d) % capacity
		p := h.table[slot]
		if p == nil {
			return -1
		}
		if p.key.Equals(key) {
			return slot
		}
	}
	return -1
}

func (h *HashTable) Add(key Key, value any) (bool, error) {
	if h == nil {
		panic("Nil HashTable")
	}
	if err := checkArgs("add", key, value); err != nil {
		return false, err
	}
	if slot := h.lookup(key); slot >= 0 {
		h.table[slot].SetValue(value)
		return false, nil
	}
	if h.load() >= h.loadFactor {
		if err := h.rehash(); err != nil {
			return false, err
		}
	}
	if h.size >= len(h.table) {
		return false, errors.Wrapf(ErrOutOfMemory, "table full at %d slots", len(h.table))
	}
	if err := h.place(NewPair(key, value)); err != nil {
		return false, err
	}
	return true, nil
}

// place 对确定不存在的 key 执行 Robin Hood 插入：遇到空槽就放入；
// 遇到位移不小于当前 Pair 的住户就继续向后走，否则与其交换
func (h *HashTable) place(carried *Pair) error {
	capacity := len(h.table)
	slot := indexFor(carried.key, capacity)
	d := 0
	for probes := 0; probes < capacity; probes++ {
		resident := h.table[slot]
		if resident == nil {
			h.table[slot] = carried
			h.size++
			if d > h.maxDisplacement {
				h.maxDisplacement = d
			}
			if probes > h.probeCount {
				h.probeCount = probes
			}
			return nil
		}
		h.collisions++
		if rd := h.displacement(resident.key, slot); rd < d {
			h.table[slot] = carried
			if d > h.maxDisplacement {
				h.maxDisplacement = d
			}
			carried, d = resident, rd
		}
		slot = (slot + 1) % capacity
		d++
	}
	logger.Errorf("robin hood probe exhausted %d slots carrying %v", capacity, carried.key)
	return errors.Wrapf(ErrOutOfMemory, "no free slot among %d", capacity)
}

func (h *HashTable) nextCapacity() (int, error) {
	current := len(h.table)
	if current >= MaxCapacity {
		return 0, errors.Wrapf(ErrOutOfMemory, "table already holds %d slots", current)
	}
	target := math.Min(float64(current)*h.growthRate, MaxCapacity)
	capacity := algorithms.FindPrime(int(target))
	if capacity <= current {
		capacity = algorithms.FindPrime(2*current + 1)
	}
	if capacity > MaxCapacity {
		capacity = algorithms.FindPrime(MaxCapacity)
	}
	return capacity, nil
}

func (h *HashTable) rehash() error {
	capacity, err := h.nextCapacity()
	if err != nil {
		return err
	}
	old := len(h.table)
	if err := h.resize(capacity); err != nil {
		return err
	}
	h.rehashCount++
	switch {
	case h.growthRate > h.baseGrowthRate:
		h.growthRate = math.Max(h.growthRate-1, h.baseGrowthRate)
	case h.growthRate > h.growthRateFloor:
		h.growthRate = math.Max(h.growthRate-h.growthRateStep, h.growthRateFloor)
	}
	logger.Debugf("hash table rehashed %d -> %d slots, %d entries, next growth rate %.2f",
		old, capacity, h.size, h.growthRate)
	return nil
}

// resize 把所有 Pair 重新插入新的槽数组，失败时恢复原数组和计数
func (h *HashTable) resize(capacity int) error {
	oldTable, oldSize, oldMax := h.table, h.size, h.maxDisplacement
	h.table = make([]*Pair, capacity)
	h.size = 0
	h.maxDisplacement = 0
	for _, p := range oldTable {
		if p == nil {
			continue
		}
		if err := h.place(p); err != nil {
			h.table, h.size, h.maxDisplacement = oldTable, oldSize, oldMax
			return err
		}
	}
	return nil
}

func (h *HashTable) Find(key Key) (any, bool, error) {
	if h == nil {
		panic("Nil HashTable")
	}
	if isNil(key) {
		return nil, false, errors.Wrap(ErrInvalidArgument, "find: nil key")
	}
	slot := h.lookup(key)
	if slot < 0 {
		return nil, false, nil
	}
	return h.table[slot].value, true, nil
}

// EnsureCapacity 把容量扩大到不超过 minimumSize 的最大素数，保留已有条目
func (h *HashTable) EnsureCapacity(minimumSize int) error {
	if minimumSize > MaxCapacity {
		return errors.Wrapf(ErrOutOfMemory, "capacity %d exceeds %d", minimumSize, MaxCapacity)
	}
	capacity := algorithms.FindPrime(minimumSize)
	if capacity <= len(h.table) {
		return nil
	}
	old := len(h.table)
	if err := h.resize(capacity); err != nil {
		return err
	}
	logger.Debugf("hash table pre-sized %d -> %d slots", old, capacity)
	return nil
}

// Compress 用线性探测把条目压缩到恰好 Size() 个槽位，
// 在下一次 Add 触发 rehash 之前查找会扫描整张表
func (h *HashTable) Compress() error {
	if h.size == 0 {
		return nil
	}
	capacity := h.size
	table := make([]*Pair, capacity)
	for _, p := range h.table {
		if p == nil {
			continue
		}
		slot := indexFor(p.key, capacity)
		for table[slot] != nil {
			slot = (slot + 1) % capacity
		}
		table[slot] = p
	}
	logger.Debugf("hash table compressed %d -> %d slots", len(h.table), capacity)
	h.table = table
	h.maxDisplacement = capacity
	return nil
}

func (h *HashTable) ToSortedArray() []*Pair {
	res := make([]*Pair, 0, h.size)
	for _, p := range h.table {
		if p != nil {
			res = append(res, p)
		}
	}
	algorithms.FastSortAll(res, comparePairs)
	return res
}

func (h *HashTable) ForEach(p Processor) {
	if h == nil {
		panic("Nil HashTable")
	}
	for _, pair := range h.table {
		if pair != nil && !p(pair) {
			return
		}
	}
}

func (h *HashTable) Keys() []Key {
	return keysOf(h)
}

// Clear 清空所有条目并恢复初始容量
func (h *HashTable) Clear() {
	h.reset()
}

func (h *HashTable) Status() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Hash table fill factor is %.2f.\n", h.loadFactor))
	sb.WriteString(fmt.Sprintf("Hash table had %d collisions when filling the hash table.\n", h.collisions))
	sb.WriteString(fmt.Sprintf("Hash table had to probe %d times in the worst case.\n", h.probeCount))
	sb.WriteString(fmt.Sprintf("Hash table had to reallocate %d times.\n", h.rehashCount))
	sb.WriteString(fmt.Sprintf("Current fill rate is %.2f%%\n", h.load()*100))
	return sb.String()
}
