package owned

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// ImageLayout is core1_0.ImageLayout; the values are the native values
type ImageLayout = core1_0.ImageLayout

// Format is core1_0.Format; the values are the native values
type Format = core1_0.Format

// Viewport has the native layout and is passed through to the driver unchanged
type Viewport = core1_0.Viewport

// IndexType is the width of the indices in an index buffer
type IndexType int32

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

var indexTypeMapping = map[IndexType]string{
	IndexTypeUint16: "IndexTypeUint16",
	IndexTypeUint32: "IndexTypeUint32",
}

func (t IndexType) String() string {
	return indexTypeMapping[t]
}

func (t IndexType) native() (core1_0.IndexType, error) {
	switch t {
	case IndexTypeUint16:
		return core1_0.IndexTypeUInt16, nil
	case IndexTypeUint32:
		return core1_0.IndexTypeUInt32, nil
	}

	return 0, errors.Wrapf(ErrInvalidIndexType, "index type %d", int32(t))
}

// SignalStatus is the state of a fence or event
type SignalStatus int32

const (
	Unsignaled SignalStatus = iota
	Signaled
)

var signalStatusMapping = map[SignalStatus]string{
	Unsignaled: "Unsignaled",
	Signaled:   "Signaled",
}

func (s SignalStatus) String() string {
	return signalStatusMapping[s]
}

// WaitResult is the outcome of a fence wait that did not fail
type WaitResult int32

const (
	WaitSuccess WaitResult = iota
	WaitTimeout
)

var waitResultMapping = map[WaitResult]string{
	WaitSuccess: "WaitSuccess",
	WaitTimeout: "WaitTimeout",
}

func (r WaitResult) String() string {
	return waitResultMapping[r]
}

// PipelineStage is a set of pipeline stages. Each bit has the value of the matching
// core1_0.PipelineStageFlags bit, so stages combine with | and convert without translation.
type PipelineStage int32

var pipelineStageMapping = common.NewFlagStringMapping[PipelineStage]()

func (s PipelineStage) Register(str string) {
	pipelineStageMapping.Register(s, str)
}
func (s PipelineStage) String() string {
	return pipelineStageMapping.FlagsToString(s)
}

// Native returns the stage set as driver flags
func (s PipelineStage) Native() core1_0.PipelineStageFlags {
	return core1_0.PipelineStageFlags(s)
}

const (
	PipelineStageTopOfPipe PipelineStage = 1 << iota
	PipelineStageDrawIndirect
	PipelineStageVertexInput
	PipelineStageVertexShader
	PipelineStageTessellationControlShader
	PipelineStageTessellationEvaluationShader
	PipelineStageGeometryShader
	PipelineStageFragmentShader
	PipelineStageEarlyFragmentTests
	PipelineStageLateFragmentTests
	PipelineStageColorAttachmentOutput
	PipelineStageComputeShader
	PipelineStageTransfer
	PipelineStageBottomOfPipe
	PipelineStageHost
	PipelineStageAllGraphics
	PipelineStageAllCommands
)

func init() {
	PipelineStageTopOfPipe.Register("TopOfPipe")
	PipelineStageDrawIndirect.Register("DrawIndirect")
	PipelineStageVertexInput.Register("VertexInput")
	PipelineStageVertexShader.Register("VertexShader")
	PipelineStageTessellationControlShader.Register("TessellationControlShader")
	PipelineStageTessellationEvaluationShader.Register("TessellationEvaluationShader")
	PipelineStageGeometryShader.Register("GeometryShader")
	PipelineStageFragmentShader.Register("FragmentShader")
	PipelineStageEarlyFragmentTests.Register("EarlyFragmentTests")
	PipelineStageLateFragmentTests.Register("LateFragmentTests")
	PipelineStageColorAttachmentOutput.Register("ColorAttachmentOutput")
	PipelineStageComputeShader.Register("ComputeShader")
	PipelineStageTransfer.Register("Transfer")
	PipelineStageBottomOfPipe.Register("BottomOfPipe")
	PipelineStageHost.Register("Host")
	PipelineStageAllGraphics.Register("AllGraphics")
	PipelineStageAllCommands.Register("AllCommands")
}

func nativeStages(stages []PipelineStage) []core1_0.PipelineStageFlags {
	if len(stages) == 0 {
		return nil
	}

	flags := make([]core1_0.PipelineStageFlags, 0, len(stages))
	for _, stage := range stages {
		flags = append(flags, stage.Native())
	}
	return flags
}
