// Command surveil runs the surveillance pipeline against a camera device, a
// video file, or a directory of extracted frames, and shows the annotated
// feed in a window.
//
// Usage:
//
//	surveil -device 0
//	surveil -video clip.mp4 -min-area 800
//	surveil -frames ./frames -no-display
package main

import (
	"flag"
	"fmt"
	"log"

	"gocv.io/x/gocv"

	"github.com/quanngo018/smart-city-surveilance-system/analyzer"
	"github.com/quanngo018/smart-city-surveilance-system/annotate"
	"github.com/quanngo018/smart-city-surveilance-system/detector"
	"github.com/quanngo018/smart-city-surveilance-system/images"
	"github.com/quanngo018/smart-city-surveilance-system/util"
)

func main() {
	deviceID := flag.Int("device", 0, "camera device ID")
	videoPath := flag.String("video", "", "video file to process instead of a camera")
	framesDir := flag.String("frames", "", "directory of frame-<N> image files to process")
	minArea := flag.Int("min-area", 500, "minimum object area in pixels")
	shadows := flag.Bool("shadows", true, "detect (and exclude) shadows")
	maxFrames := flag.Int("max-frames", 0, "stop after this many frames (0 means unlimited)")
	noDisplay := flag.Bool("no-display", false, "run without a display window")
	flag.Parse()

	config := detector.DefaultConfig()
	config.MinContourArea = *minArea
	config.DetectShadows = *shadows

	det, err := detector.NewObjectDetector(config)
	if err != nil {
		log.Fatalf("surveil: %v", err)
	}
	defer det.Close()

	sa := analyzer.NewSurveillanceAnalyzer()

	var window *gocv.Window
	if !*noDisplay {
		window = gocv.NewWindow("Surveillance")
		defer window.Close()
	}

	if *framesDir != "" {
		err = runFrameDirectory(*framesDir, det, sa, window, *maxFrames)
	} else {
		err = runCapture(*videoPath, *deviceID, det, sa, window, *maxFrames)
	}
	if err != nil {
		log.Fatalf("surveil: %v", err)
	}

	stats := sa.Stats()
	log.Printf("done: frames=%d current=%d avg=%.2f max=%d min=%d",
		det.FrameCount(), stats.Current, stats.Average, stats.Max, stats.Min)
}

// runCapture processes frames from a camera device or video file.
func runCapture(videoPath string, deviceID int, det *detector.ObjectDetector,
	sa *analyzer.SurveillanceAnalyzer, window *gocv.Window, maxFrames int) error {
	var (
		capture *gocv.VideoCapture
		err     error
		source  string
	)
	if videoPath != "" {
		capture, err = gocv.VideoCaptureFile(videoPath)
		source = videoPath
	} else {
		capture, err = gocv.OpenVideoCapture(deviceID)
		source = fmt.Sprintf("device %d", deviceID)
	}
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", source, err)
	}
	defer capture.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	log.Printf("start reading %s", source)
	processed := 0
	for maxFrames == 0 || processed < maxFrames {
		if ok := capture.Read(&frame); !ok {
			break
		}
		if frame.Empty() {
			continue
		}

		if err := processFrame(frame, det, sa, window); err != nil {
			return err
		}
		processed++
	}
	return nil
}

// runFrameDirectory processes an extracted frame sequence in frame order.
func runFrameDirectory(dir string, det *detector.ObjectDetector,
	sa *analyzer.SurveillanceAnalyzer, window *gocv.Window, maxFrames int) error {
	frames, err := util.LoadDirectoryImageFiles(dir)
	if err != nil {
		return err
	}
	log.Printf("loaded %d frames from %s", len(frames), dir)

	for i, file := range frames {
		if maxFrames > 0 && i >= maxFrames {
			break
		}

		img, err := file.Decode()
		if err != nil {
			return err
		}
		mat, err := images.ToMat(img)
		if err != nil {
			return fmt.Errorf("cannot convert %s: %w", file.Path, err)
		}
		err = processFrame(mat, det, sa, window)
		mat.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func processFrame(frame gocv.Mat, det *detector.ObjectDetector,
	sa *analyzer.SurveillanceAnalyzer, window *gocv.Window) error {
	result, err := det.Detect(frame)
	if err != nil {
		return err
	}
	defer result.Close()

	sa.Update(len(result.Boxes))

	// Log a stats line once per history window.
	if det.FrameCount()%analyzer.HistoryCapacity == 0 {
		stats := sa.Stats()
		log.Printf("frame %d: current=%d avg=%.2f max=%d min=%d",
			det.FrameCount(), stats.Current, stats.Average, stats.Max, stats.Min)
	}

	if window != nil {
		annotated := annotate.Draw(frame, result.Boxes, len(result.Boxes))
		window.IMShow(annotated)
		annotated.Close()
		window.WaitKey(1)
	}
	return nil
}
