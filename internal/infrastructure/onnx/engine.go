// Package onnx инкапсулирует работу с onnxruntime: загрузку модели,
// жизненный цикл сессии и выполнение инференса.
package onnx

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/DRSN-tech/nose-embedder/internal/cfg"
	"github.com/DRSN-tech/nose-embedder/internal/usecase"
	"github.com/DRSN-tech/nose-embedder/pkg/e"
	"github.com/DRSN-tech/nose-embedder/pkg/logger"
	ort "github.com/yalue/onnxruntime_go"
)

// ModelProvider отдаёт локальный путь к файлу модели,
// при необходимости скачивая его из Object Storage.
type ModelProvider interface {
	Fetch(ctx context.Context) (string, error)
}

type engineState int

const (
	stateUninitialized engineState = iota
	stateLoading
	stateReady
	stateFailed
)

// Engine — обёртка над сессией onnxruntime. Потокобезопасен: инференс
// выполняется под RLock, смена состояния — под полным Lock.
type Engine struct {
	mu       sync.RWMutex
	state    engineState
	session  *ort.DynamicAdvancedSession
	info     usecase.ModelInfo
	provider ModelProvider
	cfg      *cfg.ModelCfg
	logger   logger.Logger
}

func NewEngine(provider ModelProvider, cfg *cfg.ModelCfg, logger logger.Logger) *Engine {
	return &Engine{
		state:    stateUninitialized,
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// Load получает файл модели, инициализирует окружение onnxruntime и создаёт
// сессию. Вызывается один раз при старте; до успешного завершения все запросы
// на инференс отклоняются.
//
// Медленная работа (скачивание, создание сессии) выполняется вне мьютекса:
// параллельный Infer во время загрузки обязан сразу вернуть ModelNotLoaded,
// а не висеть на блокировке до конца загрузки.
func (eng *Engine) Load(ctx context.Context) error {
	eng.mu.Lock()
	switch eng.state {
	case stateReady:
		eng.mu.Unlock()
		return nil
	case stateLoading:
		eng.mu.Unlock()
		return e.ModelNotLoaded("model load already in progress", nil)
	}
	eng.state = stateLoading
	eng.mu.Unlock()

	session, info, err := eng.initialize(ctx)

	eng.mu.Lock()
	defer eng.mu.Unlock()

	if err != nil {
		eng.state = stateFailed
		return err
	}

	eng.session = session
	eng.info = info
	eng.state = stateReady

	eng.logger.Infof("model loaded, path: %s, input: %s, output: %s", info.Path, info.InputName, info.OutputName)

	return nil
}

// initialize получает файл модели и конструирует сессию. Не трогает
// состояние движка, поэтому выполняется без блокировки.
func (eng *Engine) initialize(ctx context.Context) (*ort.DynamicAdvancedSession, usecase.ModelInfo, error) {
	var info usecase.ModelInfo

	modelPath, err := eng.provider.Fetch(ctx)
	if err != nil {
		return nil, info, e.ModelNotLoaded("failed to fetch model file", err)
	}

	if _, err := os.Stat(modelPath); err != nil {
		return nil, info, e.ModelNotLoaded(fmt.Sprintf("model file is not accessible: %s", modelPath), err)
	}

	if eng.cfg.OnnxLibraryPath != "" {
		ort.SetSharedLibraryPath(eng.cfg.OnnxLibraryPath)
	}

	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, info, e.ModelNotLoaded("failed to initialize onnxruntime environment", err)
		}
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, info, e.ModelNotLoaded("failed to inspect model graph", err)
	}

	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, info, e.ModelNotLoaded("model graph has no inputs or outputs", nil)
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		nil,
	)
	if err != nil {
		return nil, info, e.ModelNotLoaded("failed to create inference session", err)
	}

	info = usecase.ModelInfo{
		Path:        modelPath,
		InputName:   inputs[0].Name,
		OutputName:  outputs[0].Name,
		InputShape:  inputs[0].Dimensions,
		OutputShape: outputs[0].Dimensions,
	}

	return session, info, nil
}

// Infer выполняет один прогон модели и возвращает копию выходного вектора.
func (eng *Engine) Infer(ctx context.Context, input *usecase.Tensor) ([]float32, error) {
	eng.mu.RLock()
	defer eng.mu.RUnlock()

	if eng.state != stateReady {
		return nil, e.ModelNotLoaded("model is not loaded", nil)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tensor, err := ort.NewTensor(ort.NewShape(input.Shape...), input.Data)
	if err != nil {
		return nil, e.InferenceError("failed to create input tensor", err)
	}
	defer tensor.Destroy()

	outputs := []ort.Value{nil}
	if err := eng.session.Run([]ort.Value{tensor}, outputs); err != nil {
		return nil, e.InferenceError("inference run failed", err)
	}

	out, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, e.InferenceError("model output is not a float32 tensor", nil)
	}
	defer out.Destroy()

	// Данные выходного тензора живут до Destroy, поэтому копируются.
	raw := out.GetData()
	vector := make([]float32, len(raw))
	copy(vector, raw)

	return vector, nil
}

// IsReady сообщает, готова ли модель принимать запросы.
func (eng *Engine) IsReady() bool {
	eng.mu.RLock()
	defer eng.mu.RUnlock()

	return eng.state == stateReady
}

// Describe возвращает сведения о загруженной модели.
// До загрузки возвращает нулевое значение.
func (eng *Engine) Describe() usecase.ModelInfo {
	eng.mu.RLock()
	defer eng.mu.RUnlock()

	return eng.info
}

// Close освобождает сессию и окружение onnxruntime.
func (eng *Engine) Close() error {
	eng.mu.Lock()
	defer eng.mu.Unlock()

	if eng.session != nil {
		if err := eng.session.Destroy(); err != nil {
			eng.logger.Warnf("failed to destroy inference session: %v", err)
		}

		eng.session = nil
	}

	eng.state = stateUninitialized

	if ort.IsInitialized() {
		return ort.DestroyEnvironment()
	}

	return nil
}
