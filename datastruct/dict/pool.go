package dict

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"
)

type dictionaryFactory struct {
	engine   Type
	capacity int
}

func (f *dictionaryFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	d, err := New(f.engine, f.capacity)
	if err != nil {
		return nil, err
	}
	return pool.NewPooledObject(d), nil
}

func (f *dictionaryFactory) DestroyObject(_ context.Context, obj *pool.PooledObject) error {
	if _, ok := obj.Object.(Dictionary); !ok {
		return errors.New("type mismatch")
	}
	return nil
}

func (f *dictionaryFactory) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	d, ok := obj.Object.(Dictionary)
	return ok && d.Type() == f.engine
}

func (f *dictionaryFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// PassivateObject 归还时清空字典，下次借出时总是空的
func (f *dictionaryFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	d, ok := obj.Object.(Dictionary)
	if !ok {
		return errors.New("type mismatch")
	}
	d.Clear()
	return nil
}

// Pool 是同一种引擎的空字典池。Pool 本身可以并发使用，借出的字典不行
type Pool struct {
	engine  Type
	objects *pool.ObjectPool
}

func NewPool(ctx context.Context, engine Type, capacity, maxTotal int) (*Pool, error) {
	if engine != BST && engine != HASHTABLE {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown dictionary type %d", int(engine))
	}
	cfg := pool.NewDefaultPoolConfig()
	if maxTotal > 0 {
		cfg.MaxTotal = maxTotal
		cfg.MaxIdle = maxTotal
	}
	cfg.TestOnReturn = true
	factory := &dictionaryFactory{engine: engine, capacity: capacity}
	return &Pool{
		engine:  engine,
		objects: pool.NewObjectPool(ctx, factory, cfg),
	}, nil
}

func (p *Pool) Borrow(ctx context.Context) (Dictionary, error) {
	obj, err := p.objects.BorrowObject(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "borrow %s dictionary", p.engine)
	}
	d, ok := obj.(Dictionary)
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return d, nil
}

func (p *Pool) Return(ctx context.Context, d Dictionary) error {
	return p.objects.ReturnObject(ctx, d)
}

func (p *Pool) Active() int {
	return p.objects.GetNumActive()
}

func (p *Pool) Idle() int {
	return p.objects.GetNumIdle()
}

func (p *Pool) Close(ctx context.Context) {
	p.objects.Close(ctx)
}
