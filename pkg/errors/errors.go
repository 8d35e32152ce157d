// Package errors はlinefit全体のエラーハンドリングと警告システムを提供します。
// すべての失敗は4つの種別（InvalidInput, DegenerateFit, ZeroSlope, NotFitted）のいずれかに
// 分類でき、errors.Is または KindOf で呼び出し側が分岐できます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("linefit-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため pkg/log 側から注入される）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します。nilを渡すと解除されます。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されていれば構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// UndefinedMetricWarning は評価指標が定義できない場合に発生する警告です。
// 例えば、yTrueに分散がないためR²の分母が0になる場合など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	種別を表す共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidInput は長さ不一致や空の系列が渡された場合のエラーです。
	ErrInvalidInput = New("invalid input")

	// ErrEmptyData は空のデータが渡された場合のエラーです。ErrInvalidInput の一種です。
	ErrEmptyData = Wrap(ErrInvalidInput, "empty data")

	// ErrDegenerateFit は最小二乗直線が一意に定まらない場合のエラーです。
	ErrDegenerateFit = New("degenerate fit")

	// ErrZeroSlope は傾き0のモデルで逆予測を行った場合のエラーです。
	ErrZeroSlope = New("zero slope")

	// ErrNotFitted はFitで生成されていないモデルを使用した場合のエラーです。
	ErrNotFitted = New("model not fitted")

	// ErrSingularMatrix は正規方程式の行列が特異な場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はFitで生成されていないモデルに対して操作を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("linefit: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// Is は ErrNotFitted との比較を可能にします。
func (e *NotFittedError) Is(target error) bool {
	return target == ErrNotFitted
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError はxとyの長さが一致しない場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("linefit: %s: length mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// Is は ErrInvalidInput との比較を可能にします。
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// DegenerateFitError は分母 n·Σx² − (Σx)² が0になり、直線が一意に定まらない場合のエラーです。
// すべてのxが同じ値である場合や、観測が1点しかない場合に発生します。
type DegenerateFitError struct {
	Op          string
	Samples     int
	Denominator float64
}

func (e *DegenerateFitError) Error() string {
	return fmt.Sprintf("linefit: %s: degenerate fit, denominator is %g over %d samples (all x identical?)",
		e.Op, e.Denominator, e.Samples)
}

// Is は ErrDegenerateFit との比較を可能にします。
func (e *DegenerateFitError) Is(target error) bool {
	return target == ErrDegenerateFit
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DegenerateFitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("samples", e.Samples).
		Float64("denominator", e.Denominator).
		Str("type", "DegenerateFitError")
}

// NewDegenerateFitError は新しいDegenerateFitErrorを作成し、スタックトレースを付与します。
func NewDegenerateFitError(op string, samples int, denominator float64) error {
	err := &DegenerateFitError{Op: op, Samples: samples, Denominator: denominator}
	return errors.WithStack(err)
}

// ZeroSlopeError は傾きが0のため y から x を逆算できない場合のエラーです。
type ZeroSlopeError struct {
	Op        string
	Intercept float64
}

func (e *ZeroSlopeError) Error() string {
	return fmt.Sprintf("linefit: %s: slope is zero (y = %g for every x), cannot solve for x", e.Op, e.Intercept)
}

// Is は ErrZeroSlope との比較を可能にします。
func (e *ZeroSlopeError) Is(target error) bool {
	return target == ErrZeroSlope
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ZeroSlopeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("intercept", e.Intercept).
		Str("type", "ZeroSlopeError")
}

// NewZeroSlopeError は新しいZeroSlopeErrorを作成し、スタックトレースを付与します。
func NewZeroSlopeError(op string, intercept float64) error {
	err := &ZeroSlopeError{Op: op, Intercept: intercept}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切な場合に発生するエラーです。
// 例えば、CSVの値が数値として解釈できない場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("linefit: %s: %s", e.Op, e.Message)
}

// Is は ErrInvalidInput との比較を可能にします。
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError はモデルに関する一般的なエラーです。Errに種別を表すエラーを保持します。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("linefit: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("linefit: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// NumericalInstabilityError は計算結果にNaNやInfが含まれる場合のエラーです。
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("linefit: numerical instability detected in %s. Values: [%s]", e.Operation, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
