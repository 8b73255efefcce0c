package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHookChainOrder 钩子按注册顺序执行
func TestHookChainOrder(t *testing.T) {
	var calls []string
	record := func(name string) Hook {
		return func(context.Context, *HookSubject) error {
			calls = append(calls, name)
			return nil
		}
	}

	chain := NewHookChain().
		Before(record("b1")).
		Before(record("b2")).
		After(record("a1")).
		After(record("a2"))

	sub := &HookSubject{Op: "createBook"}
	require.NoError(t, chain.RunBefore(context.Background(), sub))
	require.NoError(t, chain.RunAfter(context.Background(), sub))

	assert.Equal(t, []string{"b1", "b2", "a1", "a2"}, calls)
}

// TestHookChainShortCircuit before钩子出错即短路，后续钩子不执行
func TestHookChainShortCircuit(t *testing.T) {
	boom := errors.New("校验失败")
	var reached bool

	chain := NewHookChain().
		Before(func(context.Context, *HookSubject) error { return boom }).
		Before(func(context.Context, *HookSubject) error {
			reached = true
			return nil
		})

	err := chain.RunBefore(context.Background(), &HookSubject{})
	assert.Same(t, boom, err, "错误应原样上抛")
	assert.False(t, reached, "短路后不应再执行后续钩子")
}

// TestHookChainAfterError after钩子出错同样上抛
func TestHookChainAfterError(t *testing.T) {
	boom := errors.New("审计写入失败")
	chain := NewHookChain().
		After(func(context.Context, *HookSubject) error { return boom })

	err := chain.RunAfter(context.Background(), &HookSubject{})
	assert.Same(t, boom, err)
}

// TestEmptyHookChain 空链直接放行
func TestEmptyHookChain(t *testing.T) {
	chain := NewHookChain()
	assert.NoError(t, chain.RunBefore(context.Background(), &HookSubject{}))
	assert.NoError(t, chain.RunAfter(context.Background(), &HookSubject{}))
}
