package geompred

// EpsClear is the slack subtracted from a disk's radius when testing
// segment-to-disk clearance. It absorbs the numerical error of a tangent
// line computed by TangentPoints so that line is not falsely reported as
// clipping the very disk it is tangent to.
const EpsClear = 1e-4
