package solver

// CalcHub 求解过程的进程内控制枢纽：
// Stop 用于外部中止长时间运行的求解，每次迭代轮询一次；
// Progress 推送每次迭代的残差，消费方不读取时直接丢弃。
type CalcHub struct {
	Stop     chan struct{}
	Progress chan float64
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		Stop:     make(chan struct{}),
		Progress: make(chan float64, 64),
	}
}

// StartSignal 保留已有的Stop通道：启动前收到的停止信号
// 会让求解在第一次轮询时就停下，而不是被悄悄丢弃
func (ch *CalcHub) StartSignal() {
	if ch.Stop == nil {
		ch.Stop = make(chan struct{})
	}
}

func (ch *CalcHub) StopSignal() {
	close(ch.Stop)
}

func (ch *CalcHub) stopped() bool {
	select {
	case <-ch.Stop:
		return true
	default:
		return false
	}
}

func (ch *CalcHub) pushResidual(r float64) {
	select {
	case ch.Progress <- r:
	default:
	}
}
