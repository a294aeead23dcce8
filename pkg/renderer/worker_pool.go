package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile  Tile
	Image *image.RGBA // Shared output image; tiles write disjoint pixels
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	renderer    *TileRenderer
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of tasks that may be queued without a reader.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		renderer:    renderer,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Workers skip remaining tasks once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop closes the task queue and waits for workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{TileID: task.Tile.ID, Error: err}
			continue
		}
		stats := wp.renderer.RenderTile(task.Tile.Bounds, task.Image)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
}
