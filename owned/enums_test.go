package owned

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestPipelineStageNative(t *testing.T) {
	testCases := map[string]struct {
		Stage    PipelineStage
		Expected core1_0.PipelineStageFlags
	}{
		"TopOfPipe": {
			Stage:    PipelineStageTopOfPipe,
			Expected: core1_0.PipelineStageTopOfPipe,
		},
		"ComputeShader": {
			Stage:    PipelineStageComputeShader,
			Expected: core1_0.PipelineStageComputeShader,
		},
		"Transfer": {
			Stage:    PipelineStageTransfer,
			Expected: core1_0.PipelineStageTransfer,
		},
		"Host": {
			Stage:    PipelineStageHost,
			Expected: core1_0.PipelineStageHost,
		},
		"AllCommands": {
			Stage:    PipelineStageAllCommands,
			Expected: core1_0.PipelineStageAllCommands,
		},
		"Combined": {
			Stage:    PipelineStageVertexShader | PipelineStageFragmentShader,
			Expected: core1_0.PipelineStageVertexShader | core1_0.PipelineStageFragmentShader,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, testCase.Stage.Native())
		})
	}
}

func TestPipelineStageString(t *testing.T) {
	require.Equal(t, "ComputeShader", PipelineStageComputeShader.String())
	require.Contains(t, (PipelineStageTransfer | PipelineStageHost).String(), "Transfer")
	require.Contains(t, (PipelineStageTransfer | PipelineStageHost).String(), "Host")
}

func TestIndexType(t *testing.T) {
	native, err := IndexTypeUint16.native()
	require.NoError(t, err)
	require.Equal(t, core1_0.IndexTypeUInt16, native)

	native, err = IndexTypeUint32.native()
	require.NoError(t, err)
	require.Equal(t, core1_0.IndexTypeUInt32, native)

	_, err = IndexType(-1).native()
	require.ErrorIs(t, err, ErrInvalidIndexType)

	require.Equal(t, "IndexTypeUint32", IndexTypeUint32.String())
	require.Equal(t, "Signaled", Signaled.String())
	require.Equal(t, "WaitTimeout", WaitTimeout.String())
}
