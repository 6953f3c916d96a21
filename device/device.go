// Package device opens Sony SIXAXIS controllers attached through the Linux
// joystick interface (/dev/input/js*). It supplies the input sources the
// sixaxis package consumes; the core never touches the filesystem itself.
package device

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Joystick ioctl request codes.
const (
	jsiocgVersion = 0x80046a01
	jsiocgAxes    = 0x80016a11
	jsiocgButtons = 0x80016a12
	jsiocgName    = 0x80006a13 + (128 << 16) // JSIOCGNAME(128)
)

// sixaxisName is the substring the kernel hid-sony driver reports for a
// DUALSHOCK3/SIXAXIS ("Sony PLAYSTATION(R)3 Controller").
const sixaxisName = "PLAYSTATION(R)3"

// ErrNotFound indicates no SIXAXIS controller is attached.
var ErrNotFound = errors.New("no SIXAXIS controller found")

// Device is an open joystick character device plus the metadata the driver
// reports for it. It implements io.ReadCloser; closing it unblocks a pending
// Read, which is what lets a controller session shut down cleanly.
type Device struct {
	file    *os.File
	Path    string
	Name    string
	Axes    uint8
	Buttons uint8
	Version int32
}

// Open opens the joystick device at path and queries its metadata.
func Open(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	d := &Device{file: f, Path: path}
	if err := ioctlStr(f, jsiocgName, &d.Name); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ioctl(f, jsiocgAxes, unsafe.Pointer(&d.Axes)); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ioctl(f, jsiocgButtons, unsafe.Pointer(&d.Buttons)); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := ioctl(f, jsiocgVersion, unsafe.Pointer(&d.Version)); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Find scans /dev/input/js* and returns the first device whose reported name
// identifies it as a SIXAXIS. Returns ErrNotFound when nothing matches.
func Find() (*Device, error) {
	paths, err := filepath.Glob("/dev/input/js*")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		d, err := Open(path)
		if err != nil {
			continue
		}
		if IsSixAxis(d.Name) {
			return d, nil
		}
		d.Close()
	}
	return nil, ErrNotFound
}

// IsSixAxis reports whether a driver-reported device name belongs to a
// DUALSHOCK3/SIXAXIS controller.
func IsSixAxis(name string) bool {
	return strings.Contains(name, sixaxisName)
}

// Locator returns a locator for the device at path, or for the first
// attached SIXAXIS when path is empty. The result is assignable to
// sixaxis.Locator.
func Locator(path string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		if path == "" {
			return Find()
		}
		return Open(path)
	}
}

func (d *Device) Read(p []byte) (int, error) { return d.file.Read(p) }

func (d *Device) Close() error { return d.file.Close() }

func (d *Device) String() string {
	return fmt.Sprintf("%s (%s, %d axes, %d buttons)", d.Path, d.Name, d.Axes, d.Buttons)
}

func ioctl(f *os.File, req uintptr, dest unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(dest))
	if errno != 0 {
		return fmt.Errorf("ioctl 0x%x: %w", req, errno)
	}
	return nil
}

func ioctlStr(f *os.File, req uintptr, dest *string) error {
	buf := make([]byte, 128)
	if err := ioctl(f, req, unsafe.Pointer(&buf[0])); err != nil {
		return err
	}
	*dest = trimNul(buf)
	return nil
}

// trimNul drops the NUL padding the driver leaves in fixed-size ioctl
// string buffers.
func trimNul(src []byte) string {
	if i := strings.IndexByte(string(src), 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}
