// Package detection owns the in-memory model of sensor detections.
//
// Responsibilities: the dense Matrix type carried by every detection, the
// Detection and DetectionList records, and exact field-wise equality.
// Key types: Matrix, Detection, DetectionList.
//
// Dependency rule: this package knows nothing about the wire format. The
// conversion to and from protobuf messages lives in internal/wireadapter.
package detection
