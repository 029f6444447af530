package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllowConsumesTokens 验证桶容量内的请求放行，耗尽后拒绝
func TestAllowConsumesTokens(t *testing.T) {
	tb := NewTokenBucket(60, 2)

	assert.True(t, tb.Allow(), "第1个请求应放行")
	assert.True(t, tb.Allow(), "第2个请求应放行")
	assert.False(t, tb.Allow(), "令牌耗尽后应拒绝")
}

// TestDefaultCapacity 验证capacity<=0时取QPM的一半
func TestDefaultCapacity(t *testing.T) {
	tb := NewTokenBucket(10, 0)

	// 容量应为 10/2 = 5
	for i := 0; i < 5; i++ {
		assert.True(t, tb.Allow(), "第%d个请求应放行", i+1)
	}
	assert.False(t, tb.Allow(), "超出容量后应拒绝")
}

// TestWaitReturnsImmediatelyWithTokens 验证有令牌时Wait不阻塞
func TestWaitReturnsImmediatelyWithTokens(t *testing.T) {
	tb := NewTokenBucket(60, 1)

	start := time.Now()
	err := tb.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "有令牌时Wait应立即返回")
}

// TestWaitRespectsContextCancellation 验证令牌耗尽时上下文取消使Wait退出
func TestWaitRespectsContextCancellation(t *testing.T) {
	// 1 QPM，令牌耗尽后大约要等60秒才有下一个
	tb := NewTokenBucket(1, 1)
	require.True(t, tb.Allow(), "先耗尽唯一的令牌")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tb.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded, "上下文超时后Wait应返回超时错误")
}

// TestDoRetriesOnFailure 验证失败时按策略重试并返回最后一次错误
func TestDoRetriesOnFailure(t *testing.T) {
	tb := NewTokenBucket(6000, 10).WithRetryPolicy(time.Millisecond, 2)

	calls := 0
	wantErr := errors.New("持续失败")
	err := tb.Do(context.Background(), func() error {
		calls++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr, "应返回最后一次执行的错误")
	assert.Equal(t, 3, calls, "maxRetries=2时应总共执行3次")
}

// TestDoStopsAfterSuccess 验证成功后立即返回不再重试
func TestDoStopsAfterSuccess(t *testing.T) {
	tb := NewTokenBucket(6000, 10).WithRetryPolicy(time.Millisecond, 3)

	calls := 0
	err := tb.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("第一次失败")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "第二次成功后不应再重试")
}

// TestDoRespectsContextCancellation 验证重试等待期间上下文取消立即终止
func TestDoRespectsContextCancellation(t *testing.T) {
	tb := NewTokenBucket(6000, 10).WithRetryPolicy(10*time.Second, 3)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := tb.Do(ctx, func() error {
		return errors.New("触发重试等待")
	})

	assert.ErrorIs(t, err, context.Canceled, "重试等待期间取消应立即返回取消错误")
}
